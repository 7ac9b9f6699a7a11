package config

import (
	"strings"

	"github.com/abgdnv/catalog/pkg/config"
	"github.com/abgdnv/catalog/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	Database   config.DatabaseConfig  `koanf:"database"`
	Log        config.LogConfig       `koanf:"log"`
	PProf      config.PProfConfig     `koanf:"pprof"`
	Telemetry  config.TelemetryConfig `koanf:"telemetry"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
}

// String dumps every section; database credentials are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.Database.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	validators := []configloader.Validator{
		&c.HTTPServer,
		&c.Database,
		&c.Log,
		&c.PProf,
		&c.Telemetry,
		&c.Shutdown,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
