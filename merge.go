package pricedb

// Merge returns existing followed by the lines of fresh that are not already present.
//
// Lines are compared verbatim. Existing lines are never removed, reordered or
// modified, even when existing itself holds duplicates. Fresh lines are appended in
// the order they were produced, each at most once.
func Merge(existing, fresh []string) []string {
	merged := make([]string, len(existing), len(existing)+len(fresh))
	copy(merged, existing)

	seen := make(map[string]struct{}, len(existing)+len(fresh))
	for _, line := range existing {
		seen[line] = struct{}{}
	}
	for _, line := range fresh {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		merged = append(merged, line)
	}
	return merged
}
