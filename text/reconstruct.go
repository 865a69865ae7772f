package text

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/tagex/model"
)

// ReconstructConfig holds the font-size-relative thresholds driving
// reading-order reconstruction.
type ReconstructConfig struct {
	// LineTolerance is the Y-distance tolerance for grouping elements
	// into a line, as a fraction of the larger height involved
	// (default: 0.5).
	LineTolerance float64

	// LineBreak is the Y distance, in multiples of the current
	// element's height, beyond which a line break is emitted
	// (default: 1.2).
	LineBreak float64

	// ParagraphBreak is the Y distance, in multiples of the current
	// element's height, beyond which a paragraph break is emitted
	// (default: 2.5).
	ParagraphBreak float64

	// SpaceGap is the horizontal gap, as a fraction of the current
	// element's width, beyond which a space is inserted between
	// same-line elements (default: 0.3).
	SpaceGap float64
}

// DefaultReconstructConfig returns the standard thresholds.
func DefaultReconstructConfig() ReconstructConfig {
	return ReconstructConfig{
		LineTolerance:  0.5,
		LineBreak:      1.2,
		ParagraphBreak: 2.5,
		SpaceGap:       0.3,
	}
}

// line accumulates elements judged to share a baseline. The running
// mean Y is the line's representative, so membership is decided
// against the whole line rather than against whichever element was
// compared last.
type line struct {
	elements  []model.TextElement
	sumY      float64
	maxHeight float64
}

func (l *line) add(el model.TextElement) {
	l.elements = append(l.elements, el)
	l.sumY += el.Position.Y
	if el.Height > l.maxHeight {
		l.maxHeight = el.Height
	}
}

func (l *line) representativeY() float64 {
	return l.sumY / float64(len(l.elements))
}

// Reconstruct assembles elements into human-reading-order text using
// the default thresholds.
func Reconstruct(elements []model.TextElement) string {
	return ReconstructWithConfig(elements, DefaultReconstructConfig())
}

// ReconstructWithConfig assembles elements into human-reading-order
// text: elements are clustered into lines by vertical proximity, each
// line is ordered left to right, lines run top to bottom, and the
// ordered sequence is joined with space, line-break, and
// paragraph-break decisions.
func ReconstructWithConfig(elements []model.TextElement, config ReconstructConfig) string {
	ordered := OrderElements(elements, config)
	return joinElements(ordered, config)
}

// OrderElements returns a copy of elements in reading order: line by
// line top to bottom, left to right within a line. Elements whose Y
// positions differ by no more than LineTolerance times the larger
// height involved share a line.
func OrderElements(elements []model.TextElement, config ReconstructConfig) []model.TextElement {
	if len(elements) <= 1 {
		return append([]model.TextElement(nil), elements...)
	}

	// Stable sort by Y keeps the decoder's stream order as the
	// tie-break for identical baselines.
	byY := make([]model.TextElement, len(elements))
	copy(byY, elements)
	sort.SliceStable(byY, func(i, j int) bool {
		return byY[i].Position.Y < byY[j].Position.Y
	})

	// Greedy cluster: an element joins the current line when it sits
	// within tolerance of the line's representative Y.
	var lines []*line
	current := &line{}
	current.add(byY[0])

	for _, el := range byY[1:] {
		tolerance := config.LineTolerance * math.Max(el.Height, current.maxHeight)
		if math.Abs(el.Position.Y-current.representativeY()) <= tolerance {
			current.add(el)
			continue
		}
		lines = append(lines, current)
		current = &line{}
		current.add(el)
	}
	lines = append(lines, current)

	ordered := make([]model.TextElement, 0, len(elements))
	for _, l := range lines {
		sort.SliceStable(l.elements, func(i, j int) bool {
			return l.elements[i].Position.X < l.elements[j].Position.X
		})
		ordered = append(ordered, l.elements...)
	}

	return ordered
}

// joinElements concatenates ordered elements, deciding between a
// paragraph break, a line break, a space, or direct adjacency from
// the geometry of each element relative to the previous one.
func joinElements(ordered []model.TextElement, config ReconstructConfig) string {
	if len(ordered) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(ordered[0].Text)

	prev := ordered[0]
	for _, el := range ordered[1:] {
		yDiff := math.Abs(el.Position.Y - prev.Position.Y)
		switch {
		case yDiff > el.Height*config.ParagraphBreak:
			sb.WriteString("\n\n")
		case yDiff > el.Height*config.LineBreak:
			sb.WriteString("\n")
		default:
			xGap := el.Position.X - (prev.Position.X + prev.Width)
			if xGap > el.Width*config.SpaceGap {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(el.Text)
		prev = el
	}

	return sb.String()
}
