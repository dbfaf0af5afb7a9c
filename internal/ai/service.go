package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/fine_teaching/internal/apperr"
	"github.com/Vovarama1992/fine_teaching/internal/lang"
	"github.com/Vovarama1992/fine_teaching/internal/prompts"
	"github.com/Vovarama1992/fine_teaching/internal/quiz"
	"github.com/Vovarama1992/fine_teaching/internal/textrules"
	"github.com/Vovarama1992/go-utils/logger"
)

var errEmptyCompletion = errors.New("empty completion")

type Service struct {
	llm     Completer
	models  Models
	prompts prompts.Service
	rules   textrules.Service
	timeout time.Duration
	log     *logger.ZapLogger
}

func NewService(
	llm Completer,
	models Models,
	promptSvc prompts.Service,
	rules textrules.Service,
	timeout time.Duration,
	log *logger.ZapLogger,
) *Service {
	return &Service{
		llm:     llm,
		models:  models,
		prompts: promptSvc,
		rules:   rules,
		timeout: timeout,
		log:     log,
	}
}

// Summarize reorganizes a transcript into structured notes in targetLang.
func (s *Service) Summarize(ctx context.Context, text, targetLang, title string) (string, error) {
	system := prompts.Render(s.prompts.For(targetLang).Summary, s.vars(targetLang, title))

	out, err := s.complete(ctx, "summarize", CompletionRequest{
		Model:  s.models.For(targetLang),
		System: system,
		User:   text,
	})
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", apperr.MalformedOutput("summarize", errEmptyCompletion)
	}
	return out, nil
}

// Translate returns text in targetLang with known LLM lead-ins removed.
func (s *Service) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	system := prompts.Render(s.prompts.For(targetLang).Translate, s.vars(targetLang, ""))

	out, err := s.complete(ctx, "translate", CompletionRequest{
		Model:  s.models.For(targetLang),
		System: system,
		User:   text,
	})
	if err != nil {
		return "", err
	}

	out = strings.TrimSpace(s.rules.Process(out))
	if out == "" {
		return "", apperr.MalformedOutput("translate", errEmptyCompletion)
	}
	return out, nil
}

// GenerateQuiz asks for five questions. Output that does not parse yields an
// empty, non-nil list; only backend failures are returned as errors.
func (s *Service) GenerateQuiz(ctx context.Context, text, targetLang, title string) ([]quiz.Question, error) {
	system := prompts.Render(s.prompts.For(targetLang).Quiz, s.vars(targetLang, title))

	out, err := s.complete(ctx, "quiz", CompletionRequest{
		Model:  s.models.For(targetLang),
		System: system,
		User:   text,
		JSON:   true,
	})
	if err != nil {
		return nil, err
	}

	questions, err := quiz.Parse(out)
	if err != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("[ai] quiz discarded: %s", apperr.CodeMalformedOutput),
			Service: "ai",
			Error:   err,
		})
		return []quiz.Question{}, nil
	}
	return questions, nil
}

func (s *Service) vars(targetLang, title string) prompts.Vars {
	return prompts.Vars{Language: lang.Name(targetLang), Title: title}
}

func (s *Service) complete(ctx context.Context, op string, req CompletionRequest) (string, error) {
	parent := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := s.llm.Complete(ctx, req)
	if err != nil {
		appErr := apperr.FromBackend(parent, s.llm.Name(), err)
		level, what := "error", "failed"
		if appErr.Code == apperr.CodeCanceled {
			level, what = "warn", "canceled by client"
		}
		s.log.Log(logger.LogEntry{
			Level:   level,
			Message: fmt.Sprintf("[ai] %s via %s/%s %s after %s", op, s.llm.Name(), req.Model, what, time.Since(start).Round(time.Millisecond)),
			Service: "ai",
			Error:   err,
		})
		return "", appErr
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("[ai] %s via %s/%s done in %s", op, s.llm.Name(), req.Model, time.Since(start).Round(time.Millisecond)),
		Service: "ai",
	})
	return strings.TrimSpace(out), nil
}
