package lang

import "testing"

func TestProfile(t *testing.T) {
	tests := map[string]string{
		"ko":    Korean,
		"KO-kr": Korean,
		"en":    English,
		"ja":    English,
		"":      English,
	}
	for in, want := range tests {
		if got := Profile(in); got != want {
			t.Errorf("Profile(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestName(t *testing.T) {
	tests := map[string]string{
		"ko":    "Korean",
		"en-US": "English",
		"ja":    "Japanese",
		"tlh":   "tlh",
		"":      "Korean",
	}
	for in, want := range tests {
		if got := Name(in); got != want {
			t.Errorf("Name(%q) = %q, want %q", in, got, want)
		}
	}
}
