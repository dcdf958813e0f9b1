package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/campusauth/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, non-empty fields are copied into the runtime
// Config struct.
type JsonConfig struct {
	EndpointAddrHTTP      string `json:"endpoint_addr_http"`
	AWSRegion             string `json:"aws_region"`
	AWSBaseEndpoint       string `json:"aws_base_endpoint"`
	AWSAccessKeyID        string `json:"aws_access_key_id"`
	AWSSecretAccessKey    string `json:"aws_secret_access_key"`
	UserPoolID            string `json:"user_pool_id"`
	ClientID              string `json:"client_id"`
	ClientSecret          string `json:"client_secret"`
	UserTable             string `json:"user_table"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
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
	if c.RequestTimeoutSeconds > 0 {
		config.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second
	}
}
