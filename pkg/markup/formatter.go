// Package markup rewrites generated model output into HTML-friendly fragments.
package markup

import "strings"

// FormatBullets converts runs of consecutive "* " lines into one <ul> list.
// It is line-oriented: a run closes at the first non-bulleted line or at end
// of input, and everything outside a run passes through untouched. Nested
// lists, numbered lists, and inline emphasis are left alone.
func FormatBullets(text string) string {
	lines := strings.Split(text, "\n")

	var out []string
	inList := false

	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "* ") {
			if !inList {
				out = append(out, "<ul>")
				inList = true
			}
			item := strings.TrimSpace(strings.TrimPrefix(trimmed, "* "))
			out = append(out, "<li>"+item+"</li>")
			continue
		}
		if inList {
			out = append(out, "</ul>")
			inList = false
		}
		out = append(out, line)
	}
	if inList {
		out = append(out, "</ul>")
	}

	return strings.Join(out, "\n")
}
