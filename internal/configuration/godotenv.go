package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads configuration files through the godotenv parser.
type GodotenvProvider struct{}

// Read reads KEY=VALUE configuration files into a map (map[key]value). Later
// files do not override keys set by earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}
