package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	JWTSecret   string `mapstructure:"jwt_secret"`
	TokenTTL    int    `mapstructure:"token_ttl_hours"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("missing variable: jwt_secret"))
	}
	if config.Port <= 0 {
		errs = append(errs, fmt.Errorf("invalid variable: port"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.jwt_secret", "JWT_SECRET"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.port", "SERVER_PORT"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
