package error_notificator

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
)

type Service struct {
	infra Notificator
	log   *logger.ZapLogger
}

func NewService(infra Notificator, log *logger.ZapLogger) *Service {
	return &Service{infra: infra, log: log}
}

// Notify appends a diagnosis to details and forwards the report. Delivery
// failures are logged and returned.
func (s *Service) Notify(ctx context.Context, source string, err error, details string) error {
	if d := Diagnose(err); d != "" {
		details = fmt.Sprintf("%s\n\n%s", details, d)
	}

	if sendErr := s.infra.Notify(ctx, source, err, details); sendErr != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "[error_notificator] send failed",
			Service: "error_notificator",
			Error:   sendErr,
		})
		return sendErr
	}
	return nil
}
