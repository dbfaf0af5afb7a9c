package textrules

import "testing"

func TestProcessStripsPreambles(t *testing.T) {
	svc := NewPreambleService()

	tests := []struct {
		in   string
		want string
	}{
		{"Sure, here is the translation:\nThe lecture covers entropy.", "The lecture covers entropy."},
		{"Certainly! Here's the English translation of the text: The lecture covers entropy.", "The lecture covers entropy."},
		{"Here is the translated text:\n\nHello", "Hello"},
		{"Translation: Hello", "Hello"},
		{"Translation (English): Hello", "Hello"},
		{"다음은 번역입니다:\n강의는 엔트로피를 다룹니다.", "강의는 엔트로피를 다룹니다."},
		{"네, 아래는 한국어 번역본입니다: 안녕하세요", "안녕하세요"},
		{"번역: 안녕하세요", "안녕하세요"},
		{"Sure! Here is the translation:\nTranslation: Hello", "Hello"},
	}

	for _, tt := range tests {
		if got := svc.Process(tt.in); got != tt.want {
			t.Errorf("Process(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProcessLeavesCleanTextUnchanged(t *testing.T) {
	svc := NewPreambleService()

	clean := []string{
		"The lecture covers entropy.",
		"  leading spaces and trailing newline\n",
		"Sure enough, the experiment failed.",
		"Here is where the proof breaks down: the limit diverges.",
		"강의는 엔트로피를 다룹니다.",
		"번역가는 문맥을 고려해야 한다.",
		"Translation:",
		"",
	}

	for _, s := range clean {
		if got := svc.Process(s); got != s {
			t.Errorf("Process(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestProcessIsIdempotent(t *testing.T) {
	svc := NewPreambleService()

	inputs := []string{
		"Sure, here is the translation:\nTranslation: Hello",
		"다음은 번역입니다: 번역: 안녕",
		"plain text",
	}
	for _, in := range inputs {
		once := svc.Process(in)
		if twice := svc.Process(once); twice != once {
			t.Errorf("Process not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
