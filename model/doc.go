// Package model defines the shared data types used throughout tagex.
//
// # Coordinate Space
//
// All geometry lives in page-pixel space with the origin at the
// top-left corner of the page: X grows to the right, Y grows downward.
// The decode package is responsible for flipping the PDF's native
// bottom-left origin into this space before elements reach any other
// package.
//
// # Core Types
//
// The main types are:
//
//   - [TextElement] - one positioned run of decoded text
//   - [Region] - a rectangle in page-pixel space
//   - [Tag] - a user-defined, named region
//   - [ExtractionResult] - the outcome of extracting one (document, tag) pair
//   - [ErrorCode] - the closed taxonomy of extraction failures
//
// TextElements are immutable value types: they are created fresh for
// each extraction pass and never mutated or shared between passes.
package model
