// Package configuration loads the application configuration from KEY=VALUE
// files.
package configuration

import (
	"strconv"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation of the configuration loading.
type Handler struct {
	genericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
	}
}

// ReadGeneric reads configuration files into a map (map[key]value).
func (c *Handler) ReadGeneric(filenames ...string) (envMap map[string]string, err error) {
	return c.genericHandler.Read(filenames...)
}

// MapKeyToString returns the value of key, or an empty string if not set.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the value of key parsed by [strconv.ParseBool] and
// whether it was set to a valid boolean.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string) (bool, bool) {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return false, false
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, false
	}

	return boolValue, true
}
