package config

import (
	"flag"
	"os"

	"animegallery/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the sqlite database file
//	-s string   directory holding the session slot
//	-k string   session token secret key
//
// Arguments are filtered to the flags handled here so other packages can
// own their own flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the sqlite database file")
	fs.StringVar(&cfg.SessionDir, "s", cfg.SessionDir, "directory holding the session slot")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "session token secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
