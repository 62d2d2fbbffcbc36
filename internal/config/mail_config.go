package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type MailConfig struct {
	Enabled              bool    `mapstructure:"enabled"`
	Host                 string  `mapstructure:"host"`
	Port                 int     `mapstructure:"port"`
	Username             string  `mapstructure:"username"`
	Password             string  `mapstructure:"password"`
	From                 string  `mapstructure:"from"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
	AutoSendMatches      bool    `mapstructure:"auto_send_matches"`
}

func (config MailConfig) validate() error {
	if !config.Enabled {
		return nil
	}

	var missingFields []string

	if config.Host == "" {
		missingFields = append(missingFields, "host")
	}
	if config.From == "" {
		missingFields = append(missingFields, "from")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config MailConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("mail.host", "MAIL_HOST"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.username", "MAIL_USERNAME"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.password", "MAIL_PASSWORD"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("mail.from", "MAIL_FROM"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
