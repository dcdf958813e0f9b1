// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the campus auth server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - AWSRegion: region for the identity provider and record store clients.
//   - AWSBaseEndpoint: optional endpoint override for local stacks.
//   - AWSAccessKeyID / AWSSecretAccessKey: optional static credentials,
//     mainly for local stacks; the default credential chain is used when empty.
//   - UserPoolID: identity provider user pool identifier.
//   - ClientID: identity provider app client identifier.
//   - ClientSecret: optional app client secret. When set, a secret hash is
//     attached to every provider call; when empty it is omitted entirely.
//   - UserTable: record store table that mirrors confirmed profiles.
//   - RequestTimeout: per-request deadline for external calls.
type Config struct {
	EndpointAddrHTTP   string
	AWSRegion          string
	AWSBaseEndpoint    string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	UserPoolID         string
	ClientID           string
	ClientSecret       string
	UserTable          string
	RequestTimeout     time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.AWSRegion = "us-east-1"
	c.AWSBaseEndpoint = ""
	c.AWSAccessKeyID = ""
	c.AWSSecretAccessKey = ""
	c.UserPoolID = "us-east-1_localpool"
	c.ClientID = "localclient"
	c.ClientSecret = ""
	c.UserTable = "users"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
