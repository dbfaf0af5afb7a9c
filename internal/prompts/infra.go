package prompts

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultPrompts []byte

type catalogFile map[string]Set

func parse(data []byte) (catalogFile, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing prompts: %w", err)
	}
	return f, nil
}

// loadFile reads an override catalog. Only non-empty templates replace defaults.
func loadFile(path string) (catalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prompts file: %w", err)
	}
	return parse(data)
}

func merge(base, override catalogFile) {
	for profile, o := range override {
		s := base[profile]
		if o.Summary != "" {
			s.Summary = o.Summary
		}
		if o.Translate != "" {
			s.Translate = o.Translate
		}
		if o.Quiz != "" {
			s.Quiz = o.Quiz
		}
		base[profile] = s
	}
}
