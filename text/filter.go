package text

import "github.com/tsawler/tagex/model"

// FilterByRegion returns the elements whose anchor point lies inside
// region, preserving input order. Containment is by the element's
// top-left position point only: an element that starts outside the
// region is excluded even if its extent reaches in. Region edges are
// inclusive.
//
// The result is never nil, so an empty match can be told apart from
// "not yet filtered" by callers that retain element sets.
func FilterByRegion(elements []model.TextElement, region model.Region) []model.TextElement {
	filtered := make([]model.TextElement, 0)
	for _, el := range elements {
		if region.Contains(el.Position) {
			filtered = append(filtered, el)
		}
	}
	return filtered
}
