package entity

// QuizAnswers maps quiz question identifiers to the answer a user picked.
// Values are either a single string or a list of strings (multi-select
// questions such as "occasion"). The document is opaque to everything but
// the recommendation generator.
type QuizAnswers map[string]interface{}

// Occasions returns the values of the "occasion" answer, tolerating both
// the single-string and the list form.
func (q QuizAnswers) Occasions() []string {
	raw, ok := q["occasion"]
	if !ok {
		return nil
	}

	switch v := raw.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []interface{}:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// HasOccasion reports whether any of the given occasions was selected.
func (q QuizAnswers) HasOccasion(names ...string) bool {
	for _, occasion := range q.Occasions() {
		for _, name := range names {
			if occasion == name {
				return true
			}
		}
	}
	return false
}
