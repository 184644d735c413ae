// Package config loads the importer configuration from a YAML file,
// applies NCIMPORT_* environment overrides and validates the result.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPasswordLength - length of generated passwords
const DefaultPasswordLength = 12

// Config - all settings for one import run, constructed once and
// passed into each component; there is no ambient global state
type Config struct {
	ServerURL         string        `yaml:"serverurl" envconfig:"server_url" validate:"required"`
	AdminUser         string        `yaml:"adminuser" envconfig:"admin_user" validate:"required"`
	AdminPass         string        `yaml:"adminpass" envconfig:"admin_pass" validate:"required"`
	CSVFile           string        `yaml:"csvfile" envconfig:"csv_file" validate:"required"`
	CSVDelimiter      string        `yaml:"csvdelimiter" envconfig:"csv_delimiter" validate:"required,len=1"`
	GroupDelimiter    string        `yaml:"groupdelimiter" envconfig:"group_delimiter" validate:"required,len=1"`
	GeneratePasswords bool          `yaml:"generatepasswords" envconfig:"generate_passwords"`
	PasswordLength    int           `yaml:"passwordlength" envconfig:"password_length" validate:"min=1"`
	VerifyTLS         bool          `yaml:"verifytls" envconfig:"verify_tls"`
	Language          string        `yaml:"language" envconfig:"language"`
	CombinedPDF       bool          `yaml:"combinedpdf" envconfig:"combined_pdf"`
	OutputDir         string        `yaml:"outputdir" envconfig:"output_dir" validate:"required"`
	TempDir           string        `yaml:"tempdir" envconfig:"temp_dir" validate:"required"`
	LogoPath          string        `yaml:"logopath" envconfig:"logo_path"`
	RequestTimeout    time.Duration `yaml:"requesttimeout" envconfig:"request_timeout" validate:"min=0"`
}

// ConfigurationError - fatal pre-flight configuration problem
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func defaults() Config {
	return Config{
		CSVDelimiter:   ",",
		GroupDelimiter: ";",
		VerifyTLS:      true,
		PasswordLength: DefaultPasswordLength,
		OutputDir:      "output",
		TempDir:        "tmp",
		RequestTimeout: 30 * time.Second,
	}
}

// Load - reads the YAML file at path, layers NCIMPORT_* environment
// variables on top and validates the assembled configuration
func Load(path string) (*Config, error) {
	cfg := defaults()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("config file %s does not exist", path)}
		}
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unable to parse %s: %v", path, err)}
	}

	if err := envconfig.Process("ncimport", &cfg); err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}

	cfg.ServerURL = stripScheme(cfg.ServerURL)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, &ConfigurationError{Reason: err.Error()}
	}
	return &cfg, nil
}

// CSVDelimiterRune - the field delimiter as a rune; the validator
// guarantees exactly one rune, which may be wider than one byte
func (c *Config) CSVDelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSVDelimiter)
	return r
}

// stripScheme - operators tend to paste the server address including
// the protocol; only the host part is wanted, https is always used
func stripScheme(url string) string {
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	return strings.TrimSuffix(url, "/")
}
