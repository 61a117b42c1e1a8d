package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	// KeyEncoding is the IANA name of the default text encoding.
	KeyEncoding = "LONGFILE_ENCODING"

	// KeyLogLevel is the minimum level of log messages.
	KeyLogLevel = "LONGFILE_LOG_LEVEL"

	// KeyVerifyCopy turns on checksum verification of copies.
	KeyVerifyCopy = "LONGFILE_VERIFY_COPY"
)

// AppConfiguration is the principal structure holding the application configuration.
type AppConfiguration struct {
	// Encoding is the default text encoding, nil for the system's ANSI code page.
	Encoding     encoding.Encoding
	EncodingName string
	LogLevel     slog.Level
	VerifyCopies bool
}

// NewAppConfiguration returns a pointer to a new [AppConfiguration] holding
// the defaults.
func NewAppConfiguration() *AppConfiguration {
	return &AppConfiguration{
		LogLevel: slog.LevelInfo,
	}
}

// Load reads the configuration files over the defaults. Files that do not
// exist leave the defaults in place.
func (c *Handler) Load(filenames ...string) (*AppConfiguration, error) {
	config := NewAppConfiguration()

	if len(filenames) == 0 {
		return config, nil
	}

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}

		return nil, fmt.Errorf("(config-load) failed to read: %w", err)
	}

	if name := c.MapKeyToString(envMap, KeyEncoding); name != "" {
		enc, err := ianaindex.IANA.Encoding(name)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("(config-load) %w: %s", ErrUnknownEncoding, name)
		}
		config.Encoding = enc
		config.EncodingName = name
	}

	if level := c.MapKeyToString(envMap, KeyLogLevel); level != "" {
		if err := config.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("(config-load) %w: %s", ErrInvalidLogLevel, level)
		}
	}

	if value := c.MapKeyToString(envMap, KeyVerifyCopy); value != "" {
		verify, ok := c.MapKeyToBool(envMap, KeyVerifyCopy)
		if !ok {
			return nil, fmt.Errorf("(config-load) %w: %s=%s", ErrInvalidBool, KeyVerifyCopy, value)
		}
		config.VerifyCopies = verify
	}

	return config, nil
}
