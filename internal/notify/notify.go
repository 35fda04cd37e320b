// Package notify delivers operator notices to the log, an in-process feed and
// an optional redis channel.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
)

// Fanout forwards each notice to every sink in order.
type Fanout []dashboard.Notifier

func (f Fanout) Notify(ctx context.Context, n dashboard.Notice) {
	for _, sink := range f {
		sink.Notify(ctx, n)
	}
}

// LogNotifier writes notices to a zap logger.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(_ context.Context, n dashboard.Notice) {
	l.logger.Info("notice",
		zap.String("title", n.Title),
		zap.String("description", n.Description),
		zap.Time("at", n.At),
	)
}
