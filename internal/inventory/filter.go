package inventory

import "strings"

// Filter returns the processes whose name contains text, ignoring case. An
// empty text matches everything. With hideChildren set, every process that
// has a parent is dropped. procs is not modified.
func Filter(procs []Process, text string, hideChildren bool) []Process {
	needle := strings.ToLower(text)

	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		if hideChildren && p.HasParent() {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}
