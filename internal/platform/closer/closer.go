package closer

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type closeFn struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu     sync.Mutex
	fns    []closeFn
	logger = zap.NewNop()
)

func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l != nil {
		logger = l
	}
}

// AddNamed registers a shutdown hook. Hooks run in reverse
// registration order.
func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	fns = append(fns, closeFn{name: name, fn: fn})
}

// CloseAll runs every registered hook, logging failures instead of
// aborting so that one broken resource does not leak the rest.
func CloseAll(ctx context.Context) {
	mu.Lock()
	pending := make([]closeFn, len(fns))
	copy(pending, fns)
	fns = nil
	l := logger
	mu.Unlock()

	for i := len(pending) - 1; i >= 0; i-- {
		c := pending[i]
		if err := c.fn(ctx); err != nil {
			l.Error("close resource", zap.String("name", c.name), zap.Error(err))
			continue
		}
		l.Info("resource closed", zap.String("name", c.name))
	}
}
