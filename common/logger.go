package common

import (
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	loggerOnce sync.Once
	logger     *zap.SugaredLogger
)

// Logger returns the process-wide sugared logger. Set VOCAB_DEBUG=1 for
// development output with debug level enabled.
func Logger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		var l *zap.Logger
		var err error
		if os.Getenv("VOCAB_DEBUG") != "" {
			l, err = zap.NewDevelopment()
		} else {
			l, err = zap.NewProduction()
		}
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}
