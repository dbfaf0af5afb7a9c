package speech

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Vovarama1992/fine_teaching/internal/apperr"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
)

type Service struct {
	stt     STTClient
	timeout time.Duration
	log     *logger.ZapLogger
}

func NewService(stt STTClient, timeout time.Duration, log *logger.ZapLogger) *Service {
	return &Service{
		stt:     stt,
		timeout: timeout,
		log:     log,
	}
}

// Transcribe runs one bounded STT call. A backend failure or timeout is
// BACKEND_UNAVAILABLE; a call abandoned by the caller is REQUEST_CANCELED.
func (s *Service) Transcribe(ctx context.Context, filePath string) (string, error) {
	parent := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := s.stt.Transcribe(ctx, filePath)
	if err != nil {
		appErr := apperr.FromBackend(parent, s.stt.Name(), err)
		level, what := "error", "failed"
		if appErr.Code == apperr.CodeCanceled {
			level, what = "warn", "canceled by client"
		}
		s.log.Log(logger.LogEntry{
			Level:   level,
			Message: fmt.Sprintf("[speech] %s transcription %s after %s", s.stt.Name(), what, time.Since(start).Round(time.Millisecond)),
			Service: "speech",
			Error:   err,
		})
		return "", appErr
	}

	text = strings.TrimSpace(text)
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("[speech] %s transcribed %s chars in %s",
			s.stt.Name(), humanize.Comma(int64(utf8.RuneCountInString(text))), time.Since(start).Round(time.Millisecond)),
		Service: "speech",
	})
	return text, nil
}
