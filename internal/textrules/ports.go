package textrules

import "regexp"

// Rule removes a leading pattern from model output.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

type Service interface {
	// Process strips known boilerplate. Best effort: unknown phrasings pass through.
	Process(text string) string
}
