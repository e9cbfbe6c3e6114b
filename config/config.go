// Package config reads loader settings from a YAML, TOML or JSON file.
package config

import (
	"fmt"

	"github.com/go-sif/arff/loader"
	"github.com/spf13/viper"
)

// LoadConf reads a loader.Conf from the file at path. The format is chosen
// from the file extension.
func LoadConf(path string) (*loader.Conf, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("ignore_row_errors", false)
	v.SetDefault("max_row_errors", 0)
	v.SetDefault("log_level", loader.DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var conf loader.Conf
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if conf.MaxRowErrors < 0 {
		return nil, fmt.Errorf("max_row_errors must not be negative, was %d", conf.MaxRowErrors)
	}
	return &conf, nil
}
