package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with MEMOCLI_-prefixed environment variables,
// e.g. MEMOCLI_SERVER_ADDR or MEMOCLI_REQUEST_TIMEOUT=45s. Unset
// variables leave earlier layers untouched.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "MEMOCLI_"}); err != nil {
		panic(err)
	}
}
