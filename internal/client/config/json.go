package config

import (
	"encoding/json"
	"os"

	"locshare/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Its fields are copied into the runtime Config after
// unmarshalling.
type JsonConfig struct {
	ServerURL string `json:"server_url"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c/-config flags; when no
// path is given, nothing is loaded.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerURL != "" {
		cfg.ServerURL = c.ServerURL
	}
}
