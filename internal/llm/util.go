package llm

import "strings"

// CleanResponse strips markdown the model adds despite instructions: a surrounding
// code fence and bold/italic asterisks. Bullet glyphs and numbering are left alone.
func CleanResponse(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// drop a language tag such as "markdown" or "text"
		if idx := strings.Index(text, "\n"); idx >= 0 {
			if tag := text[:idx]; len(tag) < 20 && !strings.Contains(tag, " ") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		// "* item" list markers become the bullet glyph used elsewhere in feedback
		if strings.HasPrefix(trimmed, "* ") {
			indent := line[:len(line)-len(trimmed)]
			lines[i] = indent + "• " + strings.TrimPrefix(trimmed, "* ")
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
