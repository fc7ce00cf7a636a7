package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PyroSamurai/rehex"
	"github.com/PyroSamurai/rehex/api/handler"
	"github.com/PyroSamurai/rehex/cmd"
	"github.com/PyroSamurai/rehex/document"
	"github.com/PyroSamurai/rehex/logging"
	"github.com/PyroSamurai/rehex/profiling"
)

const serviceName = "api"

var (
	configFileName         = flag.String("config", "/etc/rehex/api.yml", "Path to configuration file")
	printVersion           = flag.Bool("version", false, "Print version and exit")
	printDefaultConfigFlag = flag.Bool("default-config", false, "Print default config and exit")
)

var (
	Version   = "unknown"
	GitCommit = "unknown"
)

func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println("rehex API")
		fmt.Println("Version:", Version)
		fmt.Println("Git Commit:", GitCommit)
		os.Exit(0)
	}

	config := getDefault()
	if *printDefaultConfigFlag {
		cmd.PrintConfig(config)
		os.Exit(0)
	}

	err := cmd.ReadConfig(*configFileName, &config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not read settings: %s\n", err.Error())
		os.Exit(1)
	}

	logger, err := logging.ConfigureLog(config.Logger.LogFile, config.Logger.LogLevel, serviceName, config.Logger.LogPrettyFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Can not configure log: %s\n", err.Error())
		os.Exit(1)
	}

	doc, err := document.Load(config.API.DocumentFile)
	if err != nil {
		logger.Fatalf("Can not load document: %s", err.Error())
	}
	logger.Infof("Loaded document [%s], %d bytes", config.API.DocumentFile, doc.Len())

	listener, err := net.Listen("tcp", config.API.Listen)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("Start listening by address: [%s]", config.API.Listen)

	httpHandler := handler.NewHandler(doc, logger)
	server := &http.Server{
		Handler: httpHandler,
	}

	go func() {
		server.Serve(listener) //nolint
	}()
	defer Stop(logger, server)

	reporter := profiling.NewReporter(logger, config.Profiling.GetInterval(), config.Profiling.GetWindowMs())
	reporter.Start()
	defer func() {
		if err := reporter.Stop(); err != nil {
			logger.Errorf("Can't stop profiling reporter correctly: %v", err)
		}
	}()

	logger.Infof("rehex API started (version: %s)", Version)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	logger.Info(fmt.Sprint(<-ch))
	logger.Info("rehex API shutting down.")
}

// Stop the HTTP server, giving in-flight requests time to finish
func Stop(logger rehex.Logger, server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Can't stop rehex API correctly: %v", err)
	}
	logger.Infof("rehex API stopped. Version: %s", Version)
}
