package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/xiam/to"
	"gopkg.in/yaml.v2"
)

// LoggerConfig is logger settings structure that initialises at the start of the service
type LoggerConfig struct {
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
	LogPrettyFormat bool   `yaml:"log_pretty_format"`
}

// ProfilingConfig configures the background profiling reporter
type ProfilingConfig struct {
	// How often aggregated collector stats are written to the log
	ReportInterval string `yaml:"report_interval"`
	// Aggregation window for each report, e.g. "5s"
	ReportWindow string `yaml:"report_window"`
}

// GetInterval returns the report interval as a duration
func (config *ProfilingConfig) GetInterval() time.Duration {
	return to.Duration(config.ReportInterval)
}

// GetWindowMs returns the report window in milliseconds
func (config *ProfilingConfig) GetWindowMs() uint64 {
	return uint64(to.Duration(config.ReportWindow) / time.Millisecond)
}

// ReadConfig parses config file by the given path into the given config type
func ReadConfig(configFileName string, config interface{}) error {
	configYaml, err := os.ReadFile(configFileName)
	if err != nil {
		return fmt.Errorf("can't read file [%s] [%s]", configFileName, err.Error())
	}
	err = yaml.Unmarshal(configYaml, config)
	if err != nil {
		return fmt.Errorf("can't parse config file [%s] [%s]", configFileName, err.Error())
	}
	return nil
}

// PrintConfig prints config to stdout
func PrintConfig(config interface{}) {
	d, _ := yaml.Marshal(&config)
	fmt.Println(string(d))
}
