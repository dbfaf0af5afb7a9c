package lecture

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Vovarama1992/fine_teaching/internal/apperr"
	"github.com/Vovarama1992/fine_teaching/internal/lang"
	"github.com/Vovarama1992/fine_teaching/internal/quiz"
	"github.com/Vovarama1992/fine_teaching/internal/upload"
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
)

const notifyTimeout = 10 * time.Second

type service struct {
	store    *upload.Store
	speech   Transcriber
	text     TextProcessor
	notifier Notifier
	log      *logger.ZapLogger
}

func NewService(
	store *upload.Store,
	speech Transcriber,
	text TextProcessor,
	notifier Notifier,
	log *logger.ZapLogger,
) Service {
	return &service{
		store:    store,
		speech:   speech,
		text:     text,
		notifier: notifier,
		log:      log,
	}
}

// ProcessUpload transcribes the recording and turns the transcript into notes.
// The temporary file is gone before summarization starts.
func (s *service) ProcessUpload(ctx context.Context, audio Audio, language string) (*UploadResult, error) {
	language = orDefault(language)

	transcript, err := s.transcribe(ctx, "upload-audio", audio)
	if err != nil {
		return nil, err
	}

	res := &UploadResult{Transcript: transcript}
	if transcript == "" {
		s.info("[lecture] empty transcript, summary skipped")
		return res, nil
	}

	res.Summary, err = s.text.Summarize(ctx, transcript, language, "")
	if err != nil {
		return nil, s.fail(ctx, "upload-audio", err)
	}
	return res, nil
}

// SpeechToText transcribes the recording and translates it into uiLang if set.
func (s *service) SpeechToText(ctx context.Context, audio Audio, uiLang string) (*STTResult, error) {
	uiLang = strings.TrimSpace(uiLang)

	transcript, err := s.transcribe(ctx, "stt", audio)
	if err != nil {
		return nil, err
	}
	if uiLang == "" || transcript == "" {
		return &STTResult{Transcript: transcript}, nil
	}

	translated, err := s.text.Translate(ctx, transcript, uiLang)
	if err != nil {
		return nil, s.fail(ctx, "stt", err)
	}
	return &STTResult{Language: uiLang, Transcript: translated}, nil
}

func (s *service) Summarize(ctx context.Context, text, targetLang, title string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", apperr.InvalidInput("text must not be empty")
	}

	summary, err := s.text.Summarize(ctx, text, orDefault(targetLang), title)
	if err != nil {
		return "", s.fail(ctx, "summarize", err)
	}
	return summary, nil
}

// Quiz returns five questions, or an empty list when generation produced
// nothing usable.
func (s *service) Quiz(ctx context.Context, text, targetLang, title string) ([]quiz.Question, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperr.InvalidInput("text must not be empty")
	}

	questions, err := s.text.GenerateQuiz(ctx, text, orDefault(targetLang), title)
	if err != nil {
		return nil, s.fail(ctx, "quiz", err)
	}
	if questions == nil {
		questions = []quiz.Question{}
	}
	return questions, nil
}

func (s *service) SubmitAnswer(sub quiz.Submission) quiz.Result {
	sub.TargetLang = orDefault(sub.TargetLang)
	return quiz.Grade(sub)
}

func (s *service) transcribe(ctx context.Context, op string, audio Audio) (string, error) {
	var transcript string
	err := s.store.With(audio.Body, audio.Filename, func(f *upload.TempFile) error {
		s.info(fmt.Sprintf("[lecture] %s: received %s", op, humanize.IBytes(uint64(f.Size))))

		var err error
		transcript, err = s.speech.Transcribe(ctx, f.Path)
		return err
	})
	if err != nil {
		return "", s.fail(ctx, op, err)
	}
	return transcript, nil
}

// fail reports backend outages to the administrators and passes err through.
// Work abandoned by the client is not an outage and raises no alert.
func (s *service) fail(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil && errors.Is(err, context.Canceled) {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("[lecture] %s: request canceled by client", op),
			Service: "lecture",
			Error:   err,
		})
		if !apperr.Is(err, apperr.CodeCanceled) {
			err = apperr.Canceled(err)
		}
		return err
	}
	if !apperr.Is(err, apperr.CodeBackend) {
		return err
	}

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()
	if nerr := s.notifier.Notify(nctx, "lecture/"+op, err, apperr.As(err).Message); nerr != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "[lecture] alert not delivered",
			Service: "lecture",
			Error:   nerr,
		})
	}
	return err
}

func (s *service) info(msg string) {
	s.log.Log(logger.LogEntry{Level: "info", Message: msg, Service: "lecture"})
}

func orDefault(code string) string {
	if code = strings.TrimSpace(code); code == "" {
		return lang.Default
	}
	return code
}
