package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vagali/vagali/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout is
// given in whole seconds to keep config files trivial.
type JsonConfig struct {
	ServerBaseURL     string `json:"server_base_url"`
	CredentialsDB     string `json:"credentials_db"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`
}

// parseJson overlays Config with values loaded from a JSON file given via
// the -c or -config flags. Absent file means no overlay. Read or unmarshal
// errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.CredentialsDB != "" {
		cfg.CredentialsDB = jc.CredentialsDB
	}
	if jc.RequestTimeoutSec > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSec) * time.Second
	}
}
