package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/campusauth/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   AWS region
//	-e string   AWS base endpoint override (local stacks)
//	-p string   user pool identifier
//	-i string   app client identifier
//	-s string   app client secret
//	-t string   record store table name
//	-o int      request timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-e", "-p", "-i", "-s", "-t", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.AWSRegion, "g", config.AWSRegion, "AWS region")
	fs.StringVar(&config.AWSBaseEndpoint, "e", config.AWSBaseEndpoint, "AWS base endpoint override")
	fs.StringVar(&config.UserPoolID, "p", config.UserPoolID, "user pool id")
	fs.StringVar(&config.ClientID, "i", config.ClientID, "app client id")
	fs.StringVar(&config.ClientSecret, "s", config.ClientSecret, "app client secret")
	fs.StringVar(&config.UserTable, "t", config.UserTable, "user table name")

	requestTimeout := fs.Int("o", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
