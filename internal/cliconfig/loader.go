package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".cuidrc.yaml", ".cuidrc.yml"}

// LoadOptions carries the paths given on the command line.
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist.
	ConfigFile string
	// EnvFile is a .env file loaded into the environment before CUID_*
	// variables are read. It must exist.
	EnvFile string
}

// FindLocalConfig searches for .cuidrc.yaml or .cuidrc.yml in the current
// directory. It returns an empty path when neither exists.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for _, name := range LocalConfigFileNames {
		path := filepath.Join(cwd, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// LoadConfigFile loads a CLIConfig from a YAML file.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseConfig(path, data)
}

func parseConfig(path string, data []byte) (*CLIConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}

	cfg := &CLIConfig{
		Sources:   make(map[string]string),
		SetFields: make(map[string]bool),
	}
	if len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if err := root.Decode(cfg); err != nil {
		return nil, &ConfigError{Path: path, Message: err.Error()}
	}
	if root.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(root.Content); i += 2 {
			cfg.SetFields[root.Content[i].Value] = true
		}
	}
	return cfg, nil
}

// ConfigError represents a configuration file error. Message carries the
// YAML decoder's line information.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// Load loads configuration from defaults, the config file and the
// environment, in increasing precedence. Flags are applied by the caller.
//
// An explicit config or .env file that cannot be read is an error; a
// missing .cuidrc.yaml is not.
func Load(opts LoadOptions) (*CLIConfig, error) {
	cfg := NewDefault()

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	}

	path := opts.ConfigFile
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		local, err := FindLocalConfig()
		if err != nil {
			return nil, err
		}
		path = local
	}

	if path != "" {
		fileCfg, err := LoadConfigFile(path)
		if err != nil {
			return nil, err
		}
		MergeConfig(cfg, fileCfg, SourceFile)
		cfg.ConfigFile = path
	}

	if err := LoadEnvConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
