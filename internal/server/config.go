package server

import (
	"github.com/spf13/viper"
)

// Config holds the HTTP server configuration. Values come from the
// environment (DROPLET_ prefix) with an optional droplet.env file.
type Config struct {
	Port           string `mapstructure:"PORT"`
	StaticDir      string `mapstructure:"STATIC_DIR"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("droplet")
	viper.SetConfigType("env")

	viper.SetEnvPrefix("DROPLET")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("STATIC_DIR", "public")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.BindEnv("PORT")
	viper.BindEnv("STATIC_DIR")
	viper.BindEnv("ALLOWED_ORIGINS")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
