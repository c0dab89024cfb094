// Package diag is an optional diagnostic log channel that may mirror
// events for debugging but is not part of any operation's contract. It
// defaults to a no-op logger; nothing in the core blocks on it or depends
// on its output.
package diag

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// SetLogger replaces the package-level diagnostic logger, e.g. with
// zap.NewDevelopment().Sugar() during local debugging.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}

// Record mirrors an errs.Registry capture. It takes plain strings rather
// than an errs.Entry so this package never needs to import errs (which
// would otherwise import diag right back).
func Record(operation, message string, cause error) {
	if cause != nil {
		logger.Debugw("cad operation failed", "operation", operation, "message", message, "cause", cause)
		return
	}
	logger.Debugw("cad operation failed", "operation", operation, "message", message)
}
