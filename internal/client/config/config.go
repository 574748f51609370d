package config

import "time"

// Config holds runtime settings for the memo CLI.
//
// Fields:
//   - ServerAddr: base URL of the memo service.
//   - DBPath: location of the local settings database.
//   - NotifyEndpoint: base URL of the credential-rotation webhook;
//     empty disables the side channel.
//   - AccessToken: optional bearer token for the API.
//   - RequestTimeout: per-request bound on API calls.
type Config struct {
	ServerAddr     string        `env:"SERVER_ADDR"`
	DBPath         string        `env:"DB_PATH"`
	NotifyEndpoint string        `env:"NOTIFY_ENDPOINT"`
	AccessToken    string        `env:"ACCESS_TOKEN"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:5230"
	c.DBPath = "memocli.db"
	c.NotifyEndpoint = ""
	c.AccessToken = ""
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
