package test

import "go.uber.org/fx"

// LifecycleRecorder captures lifecycle hooks appended during tests so they
// can be invoked manually.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook for later invocation.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub records graceful termination requests.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown signals tests that shutdown was requested.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called == nil {
		return nil
	}
	select {
	case s.Called <- struct{}{}:
	default:
	}
	return nil
}
