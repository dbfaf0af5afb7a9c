package error_notificator

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var statusInMessage = regexp.MustCompile(`status(?: code)?:? (\d{3})`)

// Diagnose turns a backend error into a short hint for administrators.
func Diagnose(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The backend did not answer in time."
	}

	msg := strings.ToLower(err.Error())
	switch code := statusOf(err); {
	case code == 401 || code == 403:
		return "Invalid API key."
	case code == 404:
		return "Model or endpoint not found."
	case code == 429:
		return "Rate limit or quota exceeded."
	case code == 400 && strings.Contains(msg, "model"):
		return "Invalid model name."
	case code == 400:
		return "Bad request to the backend."
	case code >= 500:
		return "Internal backend error."
	}
	if strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host") {
		return "Backend is unreachable."
	}
	return "Unknown backend error: " + err.Error()
}

func statusOf(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	if m := statusInMessage.FindStringSubmatch(strings.ToLower(err.Error())); m != nil {
		code, _ := strconv.Atoi(m[1])
		return code
	}
	return 0
}
