package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/reportvault/internal/flagx"
	"github.com/dmitrijs2005/reportvault/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "15m" and integer nanoseconds.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr                string         `json:"endpoint_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	Environment                 string         `json:"environment"`
	MaxBodyBytes                int64          `json:"max_body_bytes"`
	SnapshotURLValidityDuration timex.Duration `json:"snapshot_url_validity_duration"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the
// provided Config instance.
//
// The JSON file path is taken from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. If the file cannot
// be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
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

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.Environment = c.Environment
	config.MaxBodyBytes = c.MaxBodyBytes
	config.SnapshotURLValidityDuration = time.Duration(c.SnapshotURLValidityDuration.Duration)
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
