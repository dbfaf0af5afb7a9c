package prompts

import (
	"fmt"
	"strings"

	"github.com/Vovarama1992/fine_teaching/internal/lang"
)

type service struct {
	sets catalogFile
}

// NewService loads the embedded catalog and applies overridePath if set.
func NewService(overridePath string) (Service, error) {
	sets, err := parse(defaultPrompts)
	if err != nil {
		return nil, err
	}
	if overridePath != "" {
		override, err := loadFile(overridePath)
		if err != nil {
			return nil, err
		}
		merge(sets, override)
	}

	for _, p := range []string{lang.Korean, lang.English} {
		s := sets[p]
		if s.Summary == "" || s.Translate == "" || s.Quiz == "" {
			return nil, fmt.Errorf("prompts: profile %q is incomplete", p)
		}
	}
	return &service{sets: sets}, nil
}

func (s *service) For(code string) Set {
	return s.sets[lang.Profile(code)]
}

// Render fills {language} and {title}. An empty title renders as "-".
func Render(tmpl string, v Vars) string {
	title := strings.TrimSpace(v.Title)
	if title == "" {
		title = "-"
	}
	return strings.NewReplacer("{language}", v.Language, "{title}", title).Replace(tmpl)
}
