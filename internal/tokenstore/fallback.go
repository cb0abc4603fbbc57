package tokenstore

import (
	"sync"

	"go.uber.org/zap"
)

type fallback struct {
	mu       sync.Mutex
	primary  Store
	log      *zap.Logger
	token    string
	degraded bool
}

// NewFallback wraps primary so that a failing write degrades the store to
// memory-only operation for the rest of the process instead of surfacing the
// error. The session survives in memory but no longer outlives the process.
func NewFallback(primary Store, log *zap.Logger) Store {
	return &fallback{primary: primary, log: log}
}

func (f *fallback) Get() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.degraded {
		return f.token
	}
	return f.primary.Get()
}

func (f *fallback) Set(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = token
	if f.degraded {
		return nil
	}

	if err := f.primary.Set(token); err != nil {
		f.log.Warn("token persistence failed, continuing in memory", zap.Error(err))
		f.degraded = true
	}
	return nil
}

func (f *fallback) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.token = ""
	if f.degraded {
		return nil
	}

	if err := f.primary.Clear(); err != nil {
		f.log.Warn("token clear failed, continuing in memory", zap.Error(err))
		f.degraded = true
	}
	return nil
}
