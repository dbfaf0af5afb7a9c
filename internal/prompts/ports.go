package prompts

// Set holds the instruction prompts for one language profile.
// Templates may use {language} and {title}.
type Set struct {
	Summary   string `yaml:"summary"`
	Translate string `yaml:"translate"`
	Quiz      string `yaml:"quiz"`
}

// Vars are substituted into a template by Render.
type Vars struct {
	Language string
	Title    string
}

type Service interface {
	// For returns the prompt set of the profile lang belongs to.
	For(lang string) Set
}
