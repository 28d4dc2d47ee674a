package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"

	"github.com/bethropolis/actionpad/internal/app"
	"github.com/bethropolis/actionpad/internal/config"
	"github.com/bethropolis/actionpad/internal/logger"
)

var version = "dev"

func main() {
	flags := config.NewFlags(os.Args[0])
	args, err := flags.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	cfg, warnings, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Warning: %v, using defaults", err)
	}

	// --- Logger Initialization ---
	logPath := cfg.Logger.LogFilePath
	if logPath == "" {
		logPath = config.DefaultLogFileName
	}
	logOut := os.Stderr
	if logPath != "-" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", logPath, err)
		}
		defer logFile.Close()
		logOut = logFile
	}
	logger.SetFilterDebug(*flags.DebugLog)
	logger.Init(cfg.Logger, logOut)

	logger.Infof("Starting %s %s", config.AppName, version)
	for _, w := range warnings {
		logger.Warnf("%s", w)
	}
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	} else {
		logger.Debugf("No file specified, starting empty.")
	}

	// --- Create and Run App ---
	editorApp, err := app.NewApp(cfg, filePath)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
