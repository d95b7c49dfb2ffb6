// Command analysis measures a shared bloom filter against its configured
// parameters: it fills the filter to capacity, probes it with absent keys,
// and reports sizing, fill ratio, predicted vs. observed false positive
// rate, and throughput.
//
// Configuration comes from BLOOM_-prefixed environment variables, e.g.:
//
//	BLOOM_CAPACITY=500000 BLOOM_FP_RATE=0.001 analysis
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bitpetal/bloom"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}
}

// newLogger builds a zap logger for dev or prod mode at the given level.
func newLogger(env, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var config zap.Config
	if env == "prod" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	return config.Build()
}

func run(cfg *Config, logger *zap.Logger) error {
	f, err := bloom.NewShared(cfg.Capacity, cfg.FPRate)
	if err != nil {
		return err
	}

	st, err := f.Stats()
	if err != nil {
		return err
	}
	logger.Info("filter created",
		zap.Uint64("capacity", cfg.Capacity),
		zap.Float64("fp_rate", cfg.FPRate),
		zap.Uint64("bits", st.Bits),
		zap.Uint32("hashes", st.Hashes),
		zap.Uint64("memory_bytes", st.Bits/8),
	)

	// Fill to capacity
	start := time.Now()
	for i := uint64(0); i < cfg.Capacity; i++ {
		if err := f.AddString(fmt.Sprintf("item-%d", i)); err != nil {
			return err
		}
	}
	insertElapsed := time.Since(start)

	fill, err := f.FillRatio()
	if err != nil {
		return err
	}
	predicted, err := f.EstimatedFalsePositiveRate()
	if err != nil {
		return err
	}
	logger.Info("filter filled",
		zap.Duration("elapsed", insertElapsed),
		zap.Float64("inserts_per_sec", float64(cfg.Capacity)/insertElapsed.Seconds()),
		zap.Float64("fill_ratio", fill),
		zap.Float64("predicted_fp_rate", predicted),
	)

	// Probe with keys that were never inserted
	start = time.Now()
	var falsePositives uint64
	for i := uint64(0); i < cfg.Probes; i++ {
		ok, err := f.MemberString(fmt.Sprintf("absent-%d", i))
		if err != nil {
			return err
		}
		if ok {
			falsePositives++
		}
	}
	probeElapsed := time.Since(start)

	observed := float64(falsePositives) / float64(cfg.Probes)
	logger.Info("probe complete",
		zap.Duration("elapsed", probeElapsed),
		zap.Float64("probes_per_sec", float64(cfg.Probes)/probeElapsed.Seconds()),
		zap.Uint64("false_positives", falsePositives),
		zap.Float64("observed_fp_rate", observed),
		zap.Float64("target_fp_rate", cfg.FPRate),
	)

	if observed > cfg.FPRate*2 {
		logger.Warn("observed false positive rate exceeds twice the target",
			zap.Float64("observed", observed),
			zap.Float64("target", cfg.FPRate),
		)
	}

	return nil
}
