package config

import (
	"flag"
	"os"
	"time"

	"github.com/memoclub/memocli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the memo service (default from Config)
//	-d string   local settings database path
//	-n string   credential-rotation webhook base URL
//	-t string   bearer access token
//	-i int      request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-n", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "base URL of the memo service")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the local settings database")
	fs.StringVar(&cfg.NotifyEndpoint, "n", cfg.NotifyEndpoint, "credential-rotation webhook base URL")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "bearer access token")
	requestTimeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
