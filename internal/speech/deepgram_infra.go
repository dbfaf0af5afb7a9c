package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

const deepgramURL = "https://api.deepgram.com"

type DeepgramClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewDeepgramClient(apiKey, model string) *DeepgramClient {
	return &DeepgramClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: deepgramURL,
		client:  &http.Client{},
	}
}

func (c *DeepgramClient) Name() string { return "deepgram" }

func (c *DeepgramClient) Transcribe(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	q := url.Values{}
	q.Set("model", c.model)
	q.Set("smart_format", "true")
	q.Set("detect_language", "true")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/listen?"+q.Encode(),
		bytes.NewReader(data),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", contentType(filePath))

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("deepgram request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deepgram error (status %d): %s", resp.StatusCode, body)
	}

	var parsed struct {
		Results struct {
			Channels []struct {
				Alternatives []struct {
					Transcript string `json:"transcript"`
				} `json:"alternatives"`
			} `json:"channels"`
		} `json:"results"`
	}

	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode deepgram: %w", err)
	}

	if len(parsed.Results.Channels) == 0 ||
		len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", fmt.Errorf("deepgram: no alternatives in response")
	}

	return parsed.Results.Channels[0].Alternatives[0].Transcript, nil
}

// contentType guesses the audio MIME type from the stored extension.
func contentType(path string) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); strings.HasPrefix(t, "audio/") || strings.HasPrefix(t, "video/") {
		return t
	}
	return "application/octet-stream"
}
