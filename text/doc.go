// Package text implements the spatial text pipeline: projecting decoded
// fragments into page-pixel elements, filtering them by region, and
// reassembling them into reading-order text.
//
// # Pipeline
//
// A typical extraction runs the stages in order:
//
//	elements, err := text.ElementsFromPage(page)
//	inside := text.FilterByRegion(elements, region)
//	raw := text.Reconstruct(inside)
//	clean := text.Normalize(raw)
//
// # Element Projection
//
// [ElementsFromPage] converts each non-empty decoded fragment into a
// [model.TextElement]. The font size is recovered from the fragment's
// affine transform scale, and the decoder's bottom-left-origin Y is
// flipped into top-left page-pixel space using the page viewport.
//
// # Region Filtering
//
// [FilterByRegion] uses anchor-point containment: an element belongs
// to a region only when its top-left position point lies inside the
// rectangle. An element that starts just outside and extends in is
// excluded. This favors precise tag boundaries over completeness.
//
// # Reading Order
//
// [Reconstruct] clusters elements into lines by vertical proximity,
// orders each line left to right, and joins the result with spacing,
// line-break, and paragraph-break decisions. All thresholds are
// relative to font size, which keeps the heuristics scale-invariant
// across documents; see [ReconstructConfig].
package text
