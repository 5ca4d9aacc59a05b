package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyStorageDBPath            = "storage.db_path"
	KeyImportHeaderScanRows     = "import.header_scan_rows"
	KeyImportPositionalFallback = "import.positional_fallback"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Import  ImportConfig  `mapstructure:"import"`
}

type StorageConfig struct {
	DBPath string `mapstructure:"db_path" validate:"required"`
}

type ImportConfig struct {
	// HeaderScanRows bounds how deep the header row search looks into the
	// sheet. PositionalFallback allows template-order parsing when no
	// header row is found.
	HeaderScanRows     int  `mapstructure:"header_scan_rows" validate:"gte=1,lte=20"`
	PositionalFallback bool `mapstructure:"positional_fallback"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# goroster configuration
storage:
  db_path: "./goroster.db"

import:
  header_scan_rows: 3
  positional_fallback: true
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStorageDBPath, "./goroster.db")
	v.SetDefault(KeyImportHeaderScanRows, 3)
	v.SetDefault(KeyImportPositionalFallback, true)
}
