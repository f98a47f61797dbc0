package main

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jacklottery/storage/costs"
	"github.com/jacklottery/storage/report"
	"github.com/jacklottery/storage/shared"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		log.Fatalln("failed to initialize zap logger:", err)
	}

	r, err := costs.BuildReport(shared.DefaultTicketCounts(), logger)
	if err != nil {
		logger.Fatal("failed to build storage report", zap.Error(err))
	}
	report.Render(os.Stdout, r)
}

// newLogger builds a console logger on stderr; stdout carries only the
// rendered table.
func newLogger() (*zap.Logger, error) {
	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return zapCfg.Build()
}
