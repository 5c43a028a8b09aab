package logging

import "go.uber.org/zap"

// New creates a new zap logger, falling back to the example logger when the
// production config cannot be built
func New() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	return logger.Sugar()
}
