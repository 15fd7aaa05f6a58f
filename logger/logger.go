package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	mtx    sync.Mutex
)

// Get returns the process-wide sugared logger, building it on first use.
func Get() *zap.SugaredLogger {
	mtx.Lock()
	defer mtx.Unlock()

	if logger == nil {
		lg, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = lg
		sugar = lg.Sugar()
	}
	return sugar
}

// Sync flushes buffered entries. Binaries defer it in main.
func Sync() error {
	mtx.Lock()
	defer mtx.Unlock()

	if logger == nil {
		return nil
	}
	return logger.Sync()
}
