// Package logger configures structured JSON logging on top of log/slog and
// installs the configured logger as the process default. It also carries the
// redaction helpers used to keep secrets and connection strings out of log
// output.
package logger
