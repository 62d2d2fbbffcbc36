package config

import "fmt"

type SchedulerConfig struct {
	Enabled                 bool `mapstructure:"enabled"`
	AssignmentDaysThreshold int  `mapstructure:"assignment_days_threshold"`
	DocumentDaysThreshold   int  `mapstructure:"document_days_threshold"`
	BatchMinScore           int  `mapstructure:"batch_min_score"`
}

func (config SchedulerConfig) validate() error {
	if config.BatchMinScore < 0 || config.BatchMinScore > 100 {
		return fmt.Errorf("invalid variable: batch_min_score must be within [0, 100]")
	}
	return nil
}
