package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  error
		want int
		code Code
	}{
		{"invalid input", InvalidInput("text is required"), http.StatusBadRequest, CodeInvalidInput},
		{"upload", Upload("missing file"), http.StatusBadRequest, CodeUpload},
		{"too large", TooLarge("file exceeds 1 MB"), http.StatusRequestEntityTooLarge, CodeTooLarge},
		{"backend", BackendUnavailable("openai", cause), http.StatusServiceUnavailable, CodeBackend},
		{"malformed", MalformedOutput("summarize", cause), http.StatusBadGateway, CodeMalformedOutput},
		{"canceled", Canceled(cause), StatusClientClosedRequest, CodeCanceled},
		{"plain error", cause, http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.err); got != tt.want {
				t.Errorf("Status() = %d, want %d", got, tt.want)
			}
			if got := ToResponse(tt.err).Error.Code; got != tt.code {
				t.Errorf("ToResponse().Code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestWrappedErrorsAreClassified(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("lecture: %w", BackendUnavailable("whisper", cause))

	if !Is(err, CodeBackend) {
		t.Fatalf("Is(err, CodeBackend) = false")
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause lost through Unwrap")
	}
	if Status(err) != http.StatusServiceUnavailable {
		t.Errorf("Status() = %d", Status(err))
	}
}

func TestToResponseHidesCause(t *testing.T) {
	err := BackendUnavailable("openai", errors.New("api key sk-123 rejected"))
	body := ToResponse(err).Error

	if body.Message != "the openai backend is unavailable" {
		t.Errorf("Message = %q", body.Message)
	}
}

func TestFromBackend(t *testing.T) {
	live := context.Background()
	if got := FromBackend(live, "whisper", context.DeadlineExceeded); got.Code != CodeBackend {
		t.Errorf("timeout on live request = %s, want %s", got.Code, CodeBackend)
	}
	if got := FromBackend(live, "whisper", errors.New("connection refused")); got.Code != CodeBackend {
		t.Errorf("backend error = %s, want %s", got.Code, CodeBackend)
	}

	gone, cancel := context.WithCancel(context.Background())
	cancel()
	got := FromBackend(gone, "whisper", fmt.Errorf("post: %w", context.Canceled))
	if got.Code != CodeCanceled {
		t.Errorf("client cancel = %s, want %s", got.Code, CodeCanceled)
	}
	if !errors.Is(got, context.Canceled) {
		t.Error("cause not preserved")
	}

	expired, cancel2 := context.WithTimeout(context.Background(), -1)
	defer cancel2()
	if got := FromBackend(expired, "openai", context.DeadlineExceeded); got.Code != CodeBackend {
		t.Errorf("deadline = %s, want %s", got.Code, CodeBackend)
	}
}
