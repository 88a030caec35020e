package config

import (
	"errors"
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	GanttChartWidth       int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads the configuration from config.yaml in the working
// directory the first time it is called. A missing file is fine; defaults
// cover every key so the binaries run without one.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")

		viper.SetDefault("port", 9095)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		viper.SetDefault("render.gantt_width", 80)

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
		}

		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
		config.GanttChartWidth = viper.GetInt("render.gantt_width")
	})

	return config
}
