package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file stle looks for at the
// tree root.
const ConfigFileName = "stle.yml"

// Config describes a project's source layout and the license values
// stamped into its headers.
type Config struct {
	Project         string   `yaml:"project" mapstructure:"project"`
	CopyrightHolder string   `yaml:"copyright_holder" mapstructure:"copyright_holder"`
	LicenseType     string   `yaml:"license_type" mapstructure:"license_type"`
	LicenseLink     string   `yaml:"license_link" mapstructure:"license_link"`
	SourceDirs      []string `yaml:"source_dirs" mapstructure:"source_dirs"`
	HeaderExts      []string `yaml:"header_exts" mapstructure:"header_exts"`
	SourceExts      []string `yaml:"source_exts" mapstructure:"source_exts"`
}

// Default returns the configuration used when no stle.yml exists.
func Default() Config {
	return Config{
		Project:         "stle",
		CopyrightHolder: "2024 Cooolrik",
		LicenseType:     "MIT",
		LicenseLink:     "https://github.com/Cooolrik/stle/blob/main/LICENSE",
		SourceDirs:      []string{"include", "src"},
		HeaderExts:      []string{".h", ".inl"},
		SourceExts:      []string{".cpp", ".c"},
	}
}

// Load reads stle.yml from dir. A missing file is not an error: the
// defaults are returned so the tools work in unconfigured trees.
func Load(dir string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigName("stle")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}
	return cfg, nil
}

// Write saves the configuration as stle.yml in dir. Unlike generated
// output, the config file belongs to the user and is written writable.
func (c Config) Write(dir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
