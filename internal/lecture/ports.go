package lecture

import (
	"context"
	"io"

	"github.com/Vovarama1992/fine_teaching/internal/quiz"
)

type Transcriber interface {
	Transcribe(ctx context.Context, filePath string) (string, error)
}

type TextProcessor interface {
	Summarize(ctx context.Context, text, targetLang, title string) (string, error)
	Translate(ctx context.Context, text, targetLang string) (string, error)
	GenerateQuiz(ctx context.Context, text, targetLang, title string) ([]quiz.Question, error)
}

type Notifier interface {
	Notify(ctx context.Context, source string, err error, details string) error
}

// Audio is an uploaded recording as received from the client.
type Audio struct {
	Body     io.Reader
	Filename string
}

type UploadResult struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}

// STTResult.Language is the language Transcript was translated into, or
// empty when no translation was requested.
type STTResult struct {
	Language   string `json:"language"`
	Transcript string `json:"transcript"`
}

type Service interface {
	ProcessUpload(ctx context.Context, audio Audio, language string) (*UploadResult, error)
	SpeechToText(ctx context.Context, audio Audio, uiLang string) (*STTResult, error)
	Summarize(ctx context.Context, text, targetLang, title string) (string, error)
	Quiz(ctx context.Context, text, targetLang, title string) ([]quiz.Question, error)
	SubmitAnswer(s quiz.Submission) quiz.Result
}
