/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package opentype decodes TrueType and OpenType font programs, standalone or
// packaged in a TrueType collection, into a queryable in-memory representation.
// It exposes glyph metrics, character-to-glyph mappings, font identity strings
// and embedding metadata as needed by document layout and font embedding
// pipelines. Glyph outlines, shaping and subsetting are out of scope.
package opentype
