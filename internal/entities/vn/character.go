// Package vn implements the visual-novel chat entities
package vn

// Character represents a chat character and its portrait art.
// NOTE: This is a data-only struct. Sprite resolution and fallback logic
// live in internal/resolver, not here.
type Character struct {
	ID   string
	Name string

	// ImageURL is the static portrait shown when no sprite can be resolved.
	// May be empty, in which case the global placeholder is used.
	ImageURL string

	// Sprites is the emotion-tagged art inventory in stored order. This is
	// the roster's view of the inventory; the resolver always works from a
	// fresh repository scan instead, because assets can be added outside
	// this engine's knowledge.
	Sprites []Sprite

	CreatedAt int64
	UpdatedAt int64
}

// Sprite is one emotion-tagged portrait asset belonging to a character.
// Emotion tags are free-form strings, not an enum.
type Sprite struct {
	Emotion  string
	Filename string
}
