package error_notificator

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
)

// LogInfra writes reports to the log. Used when no alert bot is configured.
type LogInfra struct {
	log *logger.ZapLogger
}

func NewLogInfra(log *logger.ZapLogger) *LogInfra {
	return &LogInfra{log: log}
}

func (i *LogInfra) Notify(_ context.Context, source string, err error, details string) error {
	i.log.Log(logger.LogEntry{
		Level:   "error",
		Message: fmt.Sprintf("[error_notificator] %s: %s", source, details),
		Service: "error_notificator",
		Error:   err,
	})
	return nil
}
