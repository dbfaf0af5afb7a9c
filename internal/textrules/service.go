package textrules

// maxPasses bounds stacked preambles like "Sure! Translation: ...".
const maxPasses = 4

type service struct {
	rules []Rule
}

func NewService(rules []Rule) Service {
	return &service{rules: rules}
}

// NewPreambleService returns a Service loaded with PreambleRules.
func NewPreambleService() Service {
	return NewService(PreambleRules)
}

func (s *service) Process(text string) string {
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for _, r := range s.rules {
			loc := r.Pattern.FindStringIndex(text)
			if loc == nil || loc[0] != 0 || loc[1] == 0 || loc[1] == len(text) {
				continue
			}
			text = text[loc[1]:]
			changed = true
		}
		if !changed {
			break
		}
	}
	return text
}
