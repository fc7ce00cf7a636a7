package main

import "github.com/PyroSamurai/rehex/cmd"

type config struct {
	API       apiConfig           `yaml:"api"`
	Logger    cmd.LoggerConfig    `yaml:"log"`
	Profiling cmd.ProfilingConfig `yaml:"profiling"`
}

type apiConfig struct {
	// Listen address for the HTTP API, format: ip:port
	Listen string `yaml:"listen"`
	// Path of the file served for in-place editing
	DocumentFile string `yaml:"document_file"`
}

func getDefault() config {
	return config{
		API: apiConfig{
			Listen:       ":8080",
			DocumentFile: "document.bin",
		},
		Logger: cmd.LoggerConfig{
			LogFile:         "stdout",
			LogLevel:        "info",
			LogPrettyFormat: false,
		},
		Profiling: cmd.ProfilingConfig{
			ReportInterval: "1s",
			ReportWindow:   "5s",
		},
	}
}
