package changelog

import "strings"

// Normalize applies canonical markdown spacing to the document: trailing
// whitespace stripped, exactly one blank line before each heading, no runs
// of blank lines, and a single trailing newline. Bullet and prose lines are
// never altered beyond trailing-whitespace removal.
func Normalize(content string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	var out []string
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")

		if line == "" {
			// collapse blank runs
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}

		if strings.HasPrefix(line, "#") && len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}
