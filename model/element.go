package model

// TextElement represents one positioned run of decoded text on a page.
// Position is the run's top-left anchor point in page-pixel space.
// Height tracks the font size derived from the run's transform, which
// approximates the rendered glyph height closely enough for layout
// decisions.
type TextElement struct {
	Text     string  `json:"text"`
	Position Point   `json:"position"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	FontSize float64 `json:"fontSize"`
	FontName string  `json:"fontName"`
}

// Tag is a user-defined rectangle used to select which text elements
// to extract. ID and Name come from the caller; Color is advisory
// display metadata and plays no part in extraction.
type Tag struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	Region Region `json:"region"`
}
