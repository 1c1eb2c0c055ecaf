package board

import (
	"log/slog"

	"github.com/google/uuid"
)

// Severity classifies a board notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is the board's stand-in for a toast: displaying it is the
// presentation layer's concern.
type Notification struct {
	ID       string   `json:"id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Notifier receives board notifications.
type Notifier interface {
	Notify(n Notification)
}

func newNotification(severity Severity, message string) Notification {
	return Notification{
		ID:       uuid.NewString(),
		Severity: severity,
		Message:  message,
	}
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	Logger *slog.Logger
}

// Notify implements Notifier.
func (l LogNotifier) Notify(n Notification) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	switch n.Severity {
	case SeverityError:
		logger.Warn("board notification", "id", n.ID, "message", n.Message)
	default:
		logger.Info("board notification", "id", n.ID, "message", n.Message)
	}
}
