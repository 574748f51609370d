// Package config loads runtime configuration for the memo CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the MEMOCLI_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the memo service
//	-d string   path to the local settings database
//	-n string   base URL of the credential-rotation webhook (empty disables it)
//	-t string   bearer access token
//	-i int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_addr": "https://memo.example.com",
//	  "db_path": "memocli.db",
//	  "notify_endpoint": "",
//	  "request_timeout": "30s"
//	}
package config
