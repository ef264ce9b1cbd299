package emit

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

const commentWidth = 80

// Comment renders text as a block of // lines. Long lines are wrapped and
// blank lines become a bare "//" so paragraphs stay one contiguous block.
func Comment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			lines = append(lines, "//")
			continue
		}
		for _, wrapped := range strings.Split(wordwrap.WrapString(line, commentWidth), "\n") {
			lines = append(lines, "// "+wrapped)
		}
	}
	return strings.Join(lines, "\n")
}

func deprecation(tag string) string {
	return "//\n// Deprecated: the " + tag + " element is deprecated."
}
