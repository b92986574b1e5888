package main

import (
	"flag"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bankreplay/internal/config"
	"bankreplay/internal/engine"
	"bankreplay/internal/fileio"
	"bankreplay/internal/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	input := flag.String("input", cfg.InputPath, "batch file to replay")
	output := flag.String("output", cfg.OutputPath, "report file to write")
	level := flag.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := newLogger(*level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	doc, err := fileio.Load(*input)
	if err != nil {
		logger.Fatal("failed to load batch", zap.String("path", *input), zap.Error(err))
	}
	if err := validator.ValidateDocument(doc); err != nil {
		logger.Fatal("invalid batch", zap.String("path", *input), zap.Error(err))
	}

	entries := engine.Run(doc, logger)

	if err := fileio.WriteReport(*output, entries); err != nil {
		logger.Fatal("failed to write report", zap.String("path", *output), zap.Error(err))
	}
	logger.Info("replay complete",
		zap.Int("commands", len(doc.Commands)),
		zap.Int("entries", len(entries)),
		zap.String("report", *output))
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
