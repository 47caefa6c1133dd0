package transcript

import "strings"

// Clean normalizes raw caption text: every line is trimmed and stripped of
// carriage returns, empty lines are dropped, and a line that repeats an
// earlier one is dropped as well. Auto-generated captions repeat each line
// as it scrolls, so the first occurrence is kept.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.ReplaceAll(strings.TrimSpace(line), "\r", "")
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
