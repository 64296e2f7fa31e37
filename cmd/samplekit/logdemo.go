package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"samplekit/logx"
)

func newLogDemoCmd() *cobra.Command {
	var (
		name   string
		level  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "logdemo",
		Short: "Demonstrate structured logging",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logx.New(name, level, logx.Format(format))
			if err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("Application started", zap.String("version", version))
			logger.Debug("Debug information", zap.String("user", "demo"))
			logger.Warn("Configuration file not found", zap.String("file", "config.json"))
			logger.Error("Database connection failed",
				zap.String("host", "localhost"), zap.Int("port", 5432))

			bound := logger.With(zap.String("request_id", "req-42"))
			bound.Info("Handling request")
			bound.Without("request_id").Info("Context removed")

			fmt.Printf("Logged messages with %s logger (level: %s, format: %s)\n",
				name, level, format)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "cli", "logger name")
	cmd.Flags().StringVar(&level, "level", "info", "logging level (debug, info, warning, error, critical)")
	cmd.Flags().StringVar(&format, "format", "json", "output format (json, console, keyvalue)")
	return cmd
}
