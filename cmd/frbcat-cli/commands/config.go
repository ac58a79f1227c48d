package commands

import (
	"os"

	"frbcat/lib/configutil"
)

// readConfig loads config.json5 (merged with config.local.json5). A
// missing config is fine, the defaults only stop working once a TNS
// fetch needs bot credentials.
func readConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	return cfg, err
}
