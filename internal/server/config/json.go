package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vagali/vagali/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr             string `json:"endpoint_addr"`
	DatabaseDSN              string `json:"database_dsn"`
	SecretKey                string `json:"secret_key"`
	TokenValidityDurationMin int    `json:"token_validity_duration_min"`
	S3RootUser               string `json:"s3_root_user"`
	S3RootPassword           string `json:"s3_root_password"`
	S3Bucket                 string `json:"s3_bucket"`
	S3Region                 string `json:"s3_region"`
	S3BaseEndpoint           string `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c/-config command-line
// flags; when neither is set, no JSON file is loaded. Empty JSON fields
// leave the current value in place. A file that cannot be read or parsed
// panics, a broken config should never start the server.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDurationMin != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDurationMin) * time.Minute
	}
	if c.S3RootUser != "" {
		config.S3RootUser = c.S3RootUser
	}
	if c.S3RootPassword != "" {
		config.S3RootPassword = c.S3RootPassword
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}
