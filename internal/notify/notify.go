// Package notify abstracts the flash-message surface the app shows the
// user. The real UI plugs in its own implementation; the default one writes
// structured logs so headless runs still report outcomes.
package notify

import (
	"deliverus-client/internal/httpapi"
	"deliverus-client/internal/logger"

	"go.uber.org/zap"
)

type Notifier interface {
	Success(msg string)
	Error(msg string)
	FieldErrors(errs []httpapi.FieldError)
}

type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Success(msg string) {
	logger.L().Info("flash message", zap.String("type", "success"), zap.String("message", msg))
}

func (logNotifier) Error(msg string) {
	logger.L().Warn("flash message", zap.String("type", "error"), zap.String("message", msg))
}

func (logNotifier) FieldErrors(errs []httpapi.FieldError) {
	for _, fe := range errs {
		logger.L().Warn("flash message", zap.String("type", "field_error"), zap.String("message", fe.Msg))
	}
}
