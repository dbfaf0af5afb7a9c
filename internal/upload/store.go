package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Vovarama1992/fine_teaching/internal/apperr"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

var safeExt = regexp.MustCompile(`^[A-Za-z0-9]{1,10}$`)

// Store writes uploads into a private directory under random names.
type Store struct {
	dir      string
	maxBytes int64
}

func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) MaxBytes() int64 { return s.maxBytes }

// TempFile is a saved upload. Release must be called once the file is no longer needed.
type TempFile struct {
	Path string
	Size int64
}

func (t *TempFile) Release() error {
	if err := os.Remove(t.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Save copies r to a new file. On any error nothing is left on disk.
func (s *Store) Save(r io.Reader, filename string) (*TempFile, error) {
	path := filepath.Join(s.dir, uuid.NewString()+Extension(filename))

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("create temp file: %w", err))
	}

	n, copyErr := io.Copy(out, io.LimitReader(r, s.maxBytes+1))
	closeErr := out.Close()

	switch {
	case copyErr != nil:
		os.Remove(path)
		return nil, apperr.Upload("failed to read uploaded file").WithCause(copyErr)
	case closeErr != nil:
		os.Remove(path)
		return nil, apperr.Internal(fmt.Errorf("write temp file: %w", closeErr))
	case n > s.maxBytes:
		os.Remove(path)
		return nil, apperr.TooLarge(fmt.Sprintf("file exceeds %s", humanize.IBytes(uint64(s.maxBytes))))
	case n == 0:
		os.Remove(path)
		return nil, apperr.Upload("uploaded file is empty")
	}

	return &TempFile{Path: path, Size: n}, nil
}

// With saves r, runs fn on the saved path and removes the file on every exit path.
func (s *Store) With(r io.Reader, filename string, fn func(f *TempFile) error) (err error) {
	f, err := s.Save(r, filename)
	if err != nil {
		return err
	}
	defer func() {
		if relErr := f.Release(); relErr != nil && err == nil {
			err = apperr.Internal(fmt.Errorf("remove temp file: %w", relErr))
		}
	}()
	return fn(f)
}

// Extension returns the lower-cased extension of a client filename if it is
// safe to reuse, otherwise "". Backends sniff the audio format from it.
func Extension(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if !safeExt.MatchString(ext) {
		return ""
	}
	return "." + strings.ToLower(ext)
}
