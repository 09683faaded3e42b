// Package slog provides log/slog decorators for the pagesum interfaces.
package slog
