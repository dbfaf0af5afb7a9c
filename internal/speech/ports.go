package speech

import "context"

// STTClient turns an audio file into text.
type STTClient interface {
	// Name identifies the backend in logs and errors.
	Name() string
	Transcribe(ctx context.Context, filePath string) (string, error)
}
