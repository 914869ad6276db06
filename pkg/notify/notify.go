package notify

import (
	"context"

	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
)

// Kind classifies a user-facing notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notifier is the fire-and-forget capability services use to surface toast
// style messages. Failures to notify are never propagated to callers.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, message string)
}

type logNotifier struct {
	logg *logger.Logger
}

// NewLogNotifier returns a Notifier that records notifications on the
// structured log.
func NewLogNotifier(logg *logger.Logger) Notifier {
	return &logNotifier{logg: logg}
}

func (n *logNotifier) Notify(ctx context.Context, kind Kind, message string) {
	if n == nil || n.logg == nil {
		return
	}
	ctx = n.logg.WithFields(ctx, map[string]any{
		"notify_kind": string(kind),
	})
	n.logg.Info(ctx, message)
}

// Noop returns a Notifier that discards every notification. Useful in tests.
func Noop() Notifier {
	return noopNotifier{}
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, Kind, string) {}
