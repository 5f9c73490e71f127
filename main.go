package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"chatapp-client/internal/config"
	"chatapp-client/internal/mockdata"
	"chatapp-client/internal/snowflake"
	"chatapp-client/internal/store"
	"chatapp-client/internal/tui"
)

func setupLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	zapConfig := zap.NewProductionConfig()

	// The TUI owns the terminal, so logs go to a file or nowhere.
	if cfg.LogToFile {
		zapConfig.OutputPaths = []string{"app.log"}
	} else {
		zapConfig.OutputPaths = []string{}
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", cfg.LogLevel, err)
	}
	zapConfig.Level = level

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func run() error {
	cfg, err := config.Load("config.json")
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	sugar, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer sugar.Sync()

	if err := snowflake.Setup(cfg.SnowflakeWorkerID); err != nil {
		return err
	}

	snapshot := mockdata.Generate(cfg.MockSeed)
	if err := snapshot.Validate(); err != nil {
		return fmt.Errorf("generated snapshot failed validation: %w", err)
	}
	sugar.Infof("Seeded %d servers and %d DM threads", len(snapshot.Servers), len(snapshot.DirectMessages))

	s := store.New(snapshot, sugar)
	return tui.Run(s, sugar, cfg.ShowMembers)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
