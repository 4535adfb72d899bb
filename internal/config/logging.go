package config

import (
	"context"
	"log/slog"
)

// Log logs the resolved settings in a granular way, skipping irrelevant ones
func Log(s *Settings) {
	LogWithLogger(s, slog.Default())
}

// LogWithLogger logs the resolved settings using the provided logger
func LogWithLogger(s *Settings, logger *slog.Logger) {
	ctx := context.Background()
	logger.InfoContext(ctx, "Config: transport", "value", s.Transport)
	if s.Transport == "sse" {
		logger.InfoContext(ctx, "Config: host", "value", s.Host)
		logger.InfoContext(ctx, "Config: port", "value", s.Port)
	}

	logger.InfoContext(ctx, "Config: persons.data_file", "value", s.Persons.DataFile)
	logger.InfoContext(ctx, "Config: persons.lock_timeout", "value", s.Persons.LockTimeout)
	logger.InfoContext(ctx, "Config: persons.max_results", "value", s.Persons.MaxResults)
}

// PersonsSettingsLogValue returns a slog.Value for PersonsSettings
func PersonsSettingsLogValue(s PersonsSettings) slog.Value {
	return slog.GroupValue(
		slog.String("data_file", s.DataFile),
		slog.Duration("lock_timeout", s.LockTimeout),
		slog.Int("max_results", s.MaxResults),
	)
}

// SettingsLogValue returns a slog.Value for Settings
func SettingsLogValue(s Settings) slog.Value {
	return slog.GroupValue(
		slog.String("transport", s.Transport),
		slog.String("host", s.Host),
		slog.Int("port", s.Port),
		slog.Any("persons", PersonsSettingsLogValue(s.Persons)),
	)
}
