package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"interview-insights/pkg/correlation"
	"interview-insights/pkg/metrics"
	"interview-insights/pkg/report"
	"interview-insights/pkg/scoring"
	"interview-insights/pkg/session"
	"interview-insights/pkg/util"
	"interview-insights/pkg/version"
)

var logger = logrus.New()

func init() {
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)
}

func main() {
	sessionPath := flag.String("session", "", "path to the session payload JSON")
	verbalPath := flag.String("verbal", "", "path to the external verbal score JSON (optional)")
	sessionsDir := flag.String("sessions-dir", "", "directory of session payload JSON files to score in batch")
	workers := flag.Int("workers", 0, "batch worker count (0 = CPU count)")
	flag.Parse()

	loadConfig()

	if level, err := logrus.ParseLevel(config.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Invalid LOG_LEVEL %q, using info", config.LogLevel)
	}

	logger.WithField("version", version.Version).Info("Starting interview insights pipeline")

	metrics.SetEnabled(config.MetricsEnabled)
	if config.MetricsEnabled {
		metrics.Init(logger)
	}

	assembler := report.NewAssembler(logger, report.Options{
		Scoring: scoring.Options{
			IncludeExpressivenessPlaceholder: config.LegacyConfidenceFormula,
		},
		AudioChunkSize: config.AudioChunkSize,
	})

	switch {
	case *sessionsDir != "":
		runBatch(assembler, *sessionsDir, *workers)
	case *sessionPath != "":
		runSingle(assembler, *sessionPath, *verbalPath)
	default:
		logger.Fatal("One of -session or -sessions-dir is required")
	}
}

func runSingle(assembler *report.Assembler, sessionPath, verbalPath string) {
	s, err := readSession(sessionPath)
	if err != nil {
		logger.Fatalf("Failed to read session payload: %v", err)
	}

	verbal := readVerbal(verbalPath)

	r, err := assembler.Generate(context.Background(), s, verbal)
	if err != nil {
		logger.Fatalf("Report generation failed: %v", err)
	}

	if err := writeReport(r); err != nil {
		logger.Fatalf("Failed to write report: %v", err)
	}
}

// runBatch scores every *.json payload in dir on a worker pool. A sidecar
// <name>.verbal.json next to a payload supplies its verbal score.
func runBatch(assembler *report.Assembler, dir string, workers int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Fatalf("Failed to read sessions directory: %v", err)
	}

	pool := util.NewWorkerPool(workers, 0)
	var failures int64

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasSuffix(name, ".verbal.json") {
			continue
		}
		path := filepath.Join(dir, name)
		verbalPath := strings.TrimSuffix(path, ".json") + ".verbal.json"

		job := func() {
			s, err := readSession(path)
			if err != nil {
				logger.WithField("path", path).Errorf("Failed to read session payload: %v", err)
				atomic.AddInt64(&failures, 1)
				return
			}
			r, err := assembler.Generate(context.Background(), s, readVerbal(verbalPath))
			if err != nil {
				logger.WithField("path", path).Errorf("Report generation failed: %v", err)
				atomic.AddInt64(&failures, 1)
				return
			}
			if err := writeReport(r); err != nil {
				logger.WithField("path", path).Errorf("Failed to write report: %v", err)
				atomic.AddInt64(&failures, 1)
			}
		}
		if !pool.Submit(job) {
			// Queue full: run inline rather than dropping the session.
			job()
		}
	}
	pool.Wait()

	logger.WithFields(logrus.Fields{
		"completed": pool.Completed(),
		"failures":  atomic.LoadInt64(&failures),
	}).Info("Batch scoring finished")
}

func readSession(path string) (*session.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// readVerbal loads the external verbal score. The file is optional: any
// failure degrades the report to audio-only analysis rather than aborting.
func readVerbal(path string) *correlation.VerbalScore {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("Verbal score unavailable, degrading to audio-only analysis: %v", err)
		return nil
	}
	var v correlation.VerbalScore
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warnf("Verbal score unreadable, degrading to audio-only analysis: %v", err)
		return nil
	}
	return &v
}

func writeReport(r *report.Report) error {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}

	if config.OutputDir == "" {
		fmt.Println(string(out))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(config.OutputDir, fmt.Sprintf("report-%s.json", r.ID))
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return err
	}
	logger.WithField("path", path).Info("Report written")
	return nil
}
