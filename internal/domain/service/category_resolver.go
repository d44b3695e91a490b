package service

// CategoryResolver decides which catalog category is actually queried for a
// quiz submission. AI-suggested category names rarely line up with the live
// H&M taxonomy, so the resolver keeps a known-good candidate list instead.
type CategoryResolver struct {
	candidates []string
}

func NewCategoryResolver() *CategoryResolver {
	return &CategoryResolver{
		candidates: []string{
			"ladies_all",
			"ladies/shop-by-product/view-all",
			"ladies",
		},
	}
}

// Resolve returns the category to fetch. The AI suggestions are accepted
// for reporting but do not influence the choice; only the first candidate
// is ever used (the remaining candidates are not tried on failure — known
// gap, kept as-is).
func (r *CategoryResolver) Resolve(aiSuggested []string) string {
	return r.candidates[0]
}

// Candidates exposes the full fallback list.
func (r *CategoryResolver) Candidates() []string {
	return r.candidates
}
