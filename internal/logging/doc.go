// Package logging provides structured logging utilities for the gohub
// module.
//
// This package centralizes logging patterns to ensure consistent,
// structured logging throughout the codebase using the standard library's
// slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming for API request logs
//   - Token sanitization so credentials never reach log output
//
// # Usage Patterns
//
// Attach request attributes to a log line:
//
//	logger.Debug("github api request",
//	    logging.Method(method),
//	    logging.Path(path),
//	    logging.StatusCode(res.StatusCode))
//
// Sanitize sensitive data before logging:
//
//	logger.Info("client configured",
//	    "token", logging.SanitizeToken(token))
package logging
