package upload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vovarama1992/fine_teaching/internal/apperr"
)

func newStore(t *testing.T, max int64) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "uploads"), max)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func assertEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty dir, found %d entries (first: %s)", len(entries), entries[0].Name())
	}
}

func TestSaveAndRelease(t *testing.T) {
	s := newStore(t, 1024)

	f, err := s.Save(strings.NewReader("RIFF....WAVE"), "lecture.WAV")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if f.Size != 12 {
		t.Errorf("Size = %d, want 12", f.Size)
	}
	if filepath.Dir(f.Path) != s.Dir() {
		t.Errorf("file written outside store dir: %s", f.Path)
	}
	if !strings.HasSuffix(f.Path, ".wav") {
		t.Errorf("extension not preserved: %s", f.Path)
	}

	data, err := os.ReadFile(f.Path)
	if err != nil || string(data) != "RIFF....WAVE" {
		t.Fatalf("content = %q, err = %v", data, err)
	}

	if err := f.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := f.Release(); err != nil {
		t.Errorf("second Release should be a no-op, got %v", err)
	}
	assertEmpty(t, s.Dir())
}

func TestWithRemovesFileOnSuccessAndFailure(t *testing.T) {
	s := newStore(t, 1024)

	var seen string
	err := s.With(strings.NewReader("audio"), "a.mp3", func(f *TempFile) error {
		seen = f.Path
		if _, err := os.Stat(f.Path); err != nil {
			t.Errorf("file missing inside fn: %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if seen == "" {
		t.Fatal("fn not called")
	}
	assertEmpty(t, s.Dir())

	boom := errors.New("transcription failed")
	err = s.With(strings.NewReader("audio"), "a.mp3", func(*TempFile) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("With error = %v, want %v", err, boom)
	}
	assertEmpty(t, s.Dir())
}

func TestWithRemovesFileOnPanic(t *testing.T) {
	s := newStore(t, 1024)

	func() {
		defer func() { _ = recover() }()
		_ = s.With(strings.NewReader("audio"), "a.mp3", func(*TempFile) error {
			panic("backend exploded")
		})
	}()

	assertEmpty(t, s.Dir())
}

func TestSaveRejectsOversizedAndEmpty(t *testing.T) {
	s := newStore(t, 4)

	_, err := s.Save(strings.NewReader("12345"), "big.ogg")
	if !apperr.Is(err, apperr.CodeTooLarge) {
		t.Errorf("oversized: err = %v, want PAYLOAD_TOO_LARGE", err)
	}

	_, err = s.Save(strings.NewReader(""), "empty.ogg")
	if !apperr.Is(err, apperr.CodeUpload) {
		t.Errorf("empty: err = %v, want UPLOAD_ERROR", err)
	}

	f, err := s.Save(strings.NewReader("1234"), "exact.ogg")
	if err != nil {
		t.Fatalf("exact limit: %v", err)
	}
	f.Release()

	assertEmpty(t, s.Dir())
}

func TestExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lecture.mp3", ".mp3"},
		{"Lecture.M4A", ".m4a"},
		{"../../etc/passwd", ""},
		{`C:\Users\me\rec.webm`, ".webm"},
		{"no_extension", ""},
		{"weird.mp3;rm -rf", ""},
		{"archive.tar.gz", ".gz"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Extension(tt.in); got != tt.want {
			t.Errorf("Extension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
