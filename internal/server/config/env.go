package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with env tags. The variable names match the
// deployment environment of the original Lambda-era stack (USER_POOL_ID,
// COGNITO_CLIENT_ID, COGNITO_CLIENT_SECRET, USER_TABLE).
type envConfig struct {
	EndpointAddrHTTP   string        `env:"HTTP_ADDR"`
	AWSRegion          string        `env:"AWS_REGION"`
	AWSBaseEndpoint    string        `env:"AWS_BASE_ENDPOINT"`
	AWSAccessKeyID     string        `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	UserPoolID         string        `env:"USER_POOL_ID"`
	ClientID           string        `env:"COGNITO_CLIENT_ID"`
	ClientSecret       string        `env:"COGNITO_CLIENT_SECRET"`
	UserTable          string        `env:"USER_TABLE"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
}

// parseEnv overlays values from the environment onto the provided Config.
// Unset variables leave the existing values untouched.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.AWSRegion != "" {
		config.AWSRegion = c.AWSRegion
	}
	if c.AWSBaseEndpoint != "" {
		config.AWSBaseEndpoint = c.AWSBaseEndpoint
	}
	if c.AWSAccessKeyID != "" {
		config.AWSAccessKeyID = c.AWSAccessKeyID
	}
	if c.AWSSecretAccessKey != "" {
		config.AWSSecretAccessKey = c.AWSSecretAccessKey
	}
	if c.UserPoolID != "" {
		config.UserPoolID = c.UserPoolID
	}
	if c.ClientID != "" {
		config.ClientID = c.ClientID
	}
	if c.ClientSecret != "" {
		config.ClientSecret = c.ClientSecret
	}
	if c.UserTable != "" {
		config.UserTable = c.UserTable
	}
	if c.RequestTimeout > 0 {
		config.RequestTimeout = c.RequestTimeout
	}
}
