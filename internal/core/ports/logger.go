package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Debug logs a message that is only shown when debug logging is enabled.
	Debug(msg string)
	// Error logs an error together with its cause chain.
	Error(err error)
	// SetDebug toggles debug logging.
	SetDebug(enable bool)
}
