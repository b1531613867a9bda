package schedule

// Conflict reports two ranges whose date spans overlap. Ambiguous is set when
// they also share a priority, meaning only the creation-time tie-break keeps
// resolution deterministic and an administrator should probably adjust one.
type Conflict struct {
	First     string `json:"first"`
	Second    string `json:"second"`
	Ambiguous bool   `json:"ambiguous"`
}

// Overlaps reports whether the date spans of a and b share at least one day.
func Overlaps(a, b Range) bool {
	return dateKey(a.EndDate) >= dateKey(b.StartDate) &&
		dateKey(b.EndDate) >= dateKey(a.StartDate)
}

// Conflicts returns every overlapping pair among the given ranges. Pair order
// follows input order, so callers get a stable report for the same input.
func Conflicts(ranges []Range) []Conflict {
	var out []Conflict
	for i := 0; i < len(ranges); i++ {
		for j := i + 1; j < len(ranges); j++ {
			if !Overlaps(ranges[i], ranges[j]) {
				continue
			}
			out = append(out, Conflict{
				First:     ranges[i].Name,
				Second:    ranges[j].Name,
				Ambiguous: ranges[i].Priority == ranges[j].Priority,
			})
		}
	}
	return out
}
