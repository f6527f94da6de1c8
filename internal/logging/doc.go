// Package logging constructs the slog loggers used across tfsmatch.
//
// Two output formats are supported: a compact console format for
// interactive runs and a JSON format for machine consumption. Loggers can
// tee to a log file alongside stdout when a log directory is configured.
package logging
