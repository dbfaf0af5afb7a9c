package quiz

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

var ErrNoJSON = errors.New("quiz: no JSON array or object found")

// maxCandidates bounds how many bracketed spans Parse tries before giving up.
const maxCandidates = 64

// Parse decodes model output into exactly QuestionCount validated questions.
// It accepts a bare JSON array or an object with a "questions" array, wherever
// it sits in the text: inside code fences, after a preamble, or followed by
// trailing chatter. Every balanced span is tried in order and the first one
// that validates wins.
func Parse(raw string) ([]Question, error) {
	var firstErr error
	tried := 0
	for start := 0; start < len(raw) && tried < maxCandidates; start++ {
		if raw[start] != '[' && raw[start] != '{' {
			continue
		}
		end := valueEnd(raw, start)
		if end < 0 {
			continue
		}
		tried++

		questions, err := decode(raw[start:end])
		if err == nil {
			return questions, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		return nil, ErrNoJSON
	}
	return nil, firstErr
}

func decode(payload string) ([]Question, error) {
	var questions []Question
	if payload[0] == '{' {
		var wrapped struct {
			Questions []Question `json:"questions"`
		}
		if err := json.Unmarshal([]byte(payload), &wrapped); err != nil {
			return nil, fmt.Errorf("quiz: decode object: %w", err)
		}
		questions = wrapped.Questions
	} else if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, fmt.Errorf("quiz: decode array: %w", err)
	}

	if len(questions) != QuestionCount {
		return nil, fmt.Errorf("quiz: got %d questions, want %d", len(questions), QuestionCount)
	}
	for i := range questions {
		if err := normalize(&questions[i]); err != nil {
			return nil, fmt.Errorf("quiz: question %d: %w", i+1, err)
		}
	}
	renumber(questions)

	return questions, nil
}

func normalize(q *Question) error {
	q.Question = strings.TrimSpace(q.Question)
	q.Explanation = strings.TrimSpace(q.Explanation)
	q.Correct = strings.ToUpper(strings.TrimSpace(q.Correct))

	if q.Question == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) != len(Labels) {
		return fmt.Errorf("has %d options, want %d", len(q.Options), len(Labels))
	}
	for _, label := range Labels {
		text, ok := q.Options[label]
		if !ok {
			return fmt.Errorf("missing option %s", label)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return fmt.Errorf("empty option %s", label)
		}
		q.Options[label] = text
	}
	if _, ok := q.Options[q.Correct]; !ok {
		return fmt.Errorf("correct answer %q is not one of A-D", q.Correct)
	}
	return nil
}

// renumber assigns 1..n when ids are missing or repeated.
func renumber(qs []Question) {
	seen := make(map[int]bool, len(qs))
	valid := true
	for _, q := range qs {
		if q.ID <= 0 || seen[q.ID] {
			valid = false
			break
		}
		seen[q.ID] = true
	}
	if valid {
		return
	}
	for i := range qs {
		qs[i].ID = i + 1
	}
}

// valueEnd returns the index just past the array or object opened at s[start],
// or -1 when it never closes. Brackets inside string literals are skipped.
func valueEnd(s string, start int) int {
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '[' || c == '{':
			depth++
		case c == ']' || c == '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
