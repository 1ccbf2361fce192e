package server

import (
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	// port the API listens on.
	ServerPort string `yaml:"port"`

	// connection string for the database.
	DBURI string `yaml:"dbURI"`

	// directory holding seed records to be loaded with --load-fixtures.
	FixtureRoot string `yaml:"fixtureRoot"`
}

func LoadServerConfig(filepath string) (*ServerConfig, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Unmarshal(content)
}

func Unmarshal(conf []byte) (*ServerConfig, error) {
	var out ServerConfig
	err := yaml.Unmarshal(conf, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
