package textrules

import "regexp"

// PreambleRules match the lead-ins chat models put before a translation.
var PreambleRules = []Rule{
	{
		Name: "en-here-is",
		Pattern: regexp.MustCompile(`(?i)^\s*(?:(?:sure|certainly|of course|okay|ok|absolutely)[!,.]?\s+)?` +
			`(?:here(?:'s| is| are)|below is)\b[^:\n]{0,80}\b(?:translation|translated|version|text)\b[^:\n]{0,40}:\s*`),
	},
	{
		Name:    "en-label",
		Pattern: regexp.MustCompile(`(?i)^\s*(?:translation|translated text)\s*(?:\([^)\n]{0,30}\))?\s*:\s*`),
	},
	{
		Name:    "ko-here-is",
		Pattern: regexp.MustCompile(`^\s*(?:네[,.!]?\s*)?(?:다음은|아래는|여기)[^:：\n]{0,60}번역[^:：\n]{0,30}[:：]\s*`),
	},
	{
		Name:    "ko-label",
		Pattern: regexp.MustCompile(`^\s*번역(?:문|본|된 텍스트)?\s*[:：]\s*`),
	},
}
