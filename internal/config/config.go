package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Client ClientConfig `mapstructure:"client"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// ClientConfig configures the CLI client: where the API lives and where the
// offline pending-sync queue is kept on disk.
type ClientConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	QueuePath string `mapstructure:"queue_path"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Nested keys map to env vars with underscores,
	// e.g. server.address -> SERVER_ADDRESS.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("client.base_url", "http://localhost:8080")
	viper.SetDefault("client.queue_path", "dialed/pending.db")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file is optional; defaults and env vars carry the rest.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}
	return config, nil
}
