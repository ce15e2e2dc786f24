// Package model provides the data types shared by the outline-inference
// pipeline.
//
// The input side of the contract is the [TextRun]: one visually contiguous
// piece of text on one page, carrying font size, bold flag, and vertical
// position. A [Document] is the full ordered run sequence for one PDF plus
// its page count, as produced by the extraction layer.
//
// The output side is the [Outline]: a document title plus an ordered list of
// [Entry] values, each with a [Level] (H1, H2 or H3), text, and a 1-based
// page number. Outline serializes to the stable JSON shape
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}
//
// All types are plain values; the pipeline derives everything else
// (font profiles, noise masks) per document and discards it afterwards.
package model
