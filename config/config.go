package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	ComparisonTimeQuanta  []int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once and returns the shared config.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("./")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads config.yaml from path. A missing file is not an error: defaults
// and SCHEDULER_* environment variables still apply, e.g.
// SCHEDULER_ROUND_ROBIN_TIME_QUANTUM for round_robin.time_quantum.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)

	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("round_robin.time_quantum", 2)
	v.SetDefault("comparison.time_quanta", []int{2, 4, 8})

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("round_robin.time_quantum"),
		ComparisonTimeQuanta:  v.GetIntSlice("comparison.time_quanta"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *SchedulerConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("config: round robin time quantum must be > 0, got %d", c.RoundRobinTimeQuantum)
	}
	if len(c.ComparisonTimeQuanta) == 0 {
		return errors.New("config: comparison time quanta must not be empty")
	}
	for _, q := range c.ComparisonTimeQuanta {
		if q <= 0 {
			return fmt.Errorf("config: comparison time quantum must be > 0, got %d", q)
		}
	}
	return nil
}
