package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel                string
	OutputDir               string
	LegacyConfidenceFormula bool
	AudioChunkSize          int
	MetricsEnabled          bool
}

var config Config

func loadConfig() {
	// Load environment variables; a missing .env file is fine, the
	// defaults below cover everything.
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	config.LogLevel = os.Getenv("LOG_LEVEL")
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	config.OutputDir = os.Getenv("OUTPUT_DIR")

	config.LegacyConfidenceFormula = os.Getenv("LEGACY_CONFIDENCE_FORMULA") == "true"

	config.AudioChunkSize, _ = strconv.Atoi(os.Getenv("AUDIO_CHUNK_SIZE"))

	config.MetricsEnabled = os.Getenv("METRICS_ENABLED") != "false"
}
