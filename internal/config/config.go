package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config carries everything the commands and the API need. Values come
// from defaults, then an optional survey.yaml in the working directory,
// then SURVEY_* environment variables, then command-line flags.
type Config struct {
	DataPath       string `mapstructure:"data_path"`
	Sheet          string `mapstructure:"sheet"`
	Delimiter      string `mapstructure:"delimiter"`
	IDColumn       string `mapstructure:"id_column"`
	StructureLimit int    `mapstructure:"structure_limit"`
	TopN           int    `mapstructure:"top_n"`
	ListenAddr     string `mapstructure:"listen_addr"`
}

// Load resolves the configuration. A missing config file is fine; a
// malformed one is not.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("data_path", "so_2024_raw.xlsx")
	v.SetDefault("sheet", "")
	v.SetDefault("delimiter", ";")
	v.SetDefault("id_column", "ResponseId")
	v.SetDefault("structure_limit", 20)
	v.SetDefault("top_n", 10)
	v.SetDefault("listen_addr", ":8080")

	v.SetConfigName("survey")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SURVEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
