// Package configloader loads service configuration from a YAML file, a .env file
// and the process environment, in increasing order of priority.
package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Validator interface {
	Validate() error
}

// Source describes where configuration values are read from.
type Source struct {
	ConfigFile string
	EnvFile    string
	EnvPrefix  string
}

// DefaultSource follows the convention: config.yaml and .env in the working directory,
// environment variables prefixed with <SERVICE_NAME>_.
func DefaultSource(serviceName string) Source {
	return Source{
		ConfigFile: "config.yaml",
		EnvFile:    ".env",
		EnvPrefix:  fmt.Sprintf("%s_", strings.ToUpper(serviceName)),
	}
}

// Load reads the configuration for serviceName using DefaultSource.
func Load[T Validator](serviceName string) (T, error) {
	return LoadFrom[T](DefaultSource(serviceName))
}

// LoadFrom reads, unmarshals and validates the configuration described by src.
func LoadFrom[T Validator](src Source) (T, error) {
	var cfg T
	k := koanf.New(".")

	// 1. Load configuration from yaml file
	if err := k.Load(file.Provider(src.ConfigFile), yaml.Parser()); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("WARN: error loading YAML config file '%s': %v", src.ConfigFile, err)
		}
	}

	// 2. Load environment variables from .env file
	envTransformer := func(key string) string {
		key = strings.ToLower(key)
		key = strings.TrimPrefix(key, strings.ToLower(src.EnvPrefix))
		return strings.ReplaceAll(key, "_", ".")
	}
	if envFileMap, err := godotenv.Read(src.EnvFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if !strings.HasPrefix(strings.ToUpper(key), strings.ToUpper(src.EnvPrefix)) {
				continue
			}
			envMap[envTransformer(key)] = value
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 3. Load environment variables from the system, the highest priority
	if err := k.Load(env.Provider(src.EnvPrefix, ".", envTransformer), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	// 4. Unmarshal the configuration into the Config struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 5. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
