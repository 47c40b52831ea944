// Package resolver implements the sprite fallback chain: given a character
// and a target emotion it produces exactly one displayable URL.
package resolver

import (
	"context"
	"log/slog"

	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	"github.com/Eliolocin/GengoTavern-sub001/internal/repositories/sprites"
)

// DefaultEmotion is the class-default emotion tag, shared by solo and group
// chats. Historically the two modes disagreed ("joy" vs "neutral"); the
// engine standardizes on "neutral". Decision recorded in DESIGN.md.
const DefaultEmotion = "neutral"

// Config holds the dependencies for the resolver.
type Config struct {
	SpriteRepo sprites.Repository

	// DefaultEmotion overrides DefaultEmotion when set.
	DefaultEmotion string

	// PlaceholderURL is the built-in asset used when a character has
	// neither sprites nor a static portrait.
	PlaceholderURL string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.SpriteRepo == nil {
		vb.RequiredField("SpriteRepo")
	}
	if c.PlaceholderURL == "" {
		vb.RequiredField("PlaceholderURL")
	}
	return vb.Build()
}

// Resolver resolves a character's portrait URL for a target emotion.
type Resolver struct {
	repo           sprites.Repository
	defaultEmotion string
	placeholderURL string
}

// New creates a new resolver with the provided dependencies
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	defaultEmotion := cfg.DefaultEmotion
	if defaultEmotion == "" {
		defaultEmotion = DefaultEmotion
	}

	return &Resolver{
		repo:           cfg.SpriteRepo,
		defaultEmotion: defaultEmotion,
		placeholderURL: cfg.PlaceholderURL,
	}, nil
}

// Resolve maps a character and target emotion to a displayable URL. It never
// fails: repository errors are logged and degrade to the character's static
// portrait, then to the global placeholder.
//
// The fallback chain, short-circuiting on first hit:
//  1. sprite whose emotion tag exactly equals targetEmotion
//  2. sprite tagged with the class-default emotion
//  3. first sprite in the inventory, in stored order
//  4. the character's static portrait image
//  5. the built-in placeholder asset
//
// The inventory is always refreshed via ScanAndSync first; assets may have
// been added outside this engine's knowledge.
func (r *Resolver) Resolve(ctx context.Context, character *vn.Character, targetEmotion string) string {
	if character == nil {
		return r.placeholderURL
	}

	out, err := r.repo.ScanAndSync(ctx, sprites.ScanAndSyncInput{CharacterID: character.ID})
	if err != nil {
		slog.Warn("sprite scan failed, falling back to portrait",
			"character_id", character.ID,
			"error", err,
		)
		return r.portraitOrPlaceholder(character)
	}

	inventory := out.Sprites
	sprite := findSprite(inventory, targetEmotion)
	if sprite == nil {
		sprite = findSprite(inventory, r.defaultEmotion)
	}
	if sprite == nil && len(inventory) > 0 {
		sprite = &inventory[0]
	}
	if sprite == nil {
		return r.portraitOrPlaceholder(character)
	}

	urlOut, err := r.repo.LoadAsURL(ctx, sprites.LoadAsURLInput{
		CharacterID: character.ID,
		Filename:    sprite.Filename,
	})
	if err != nil {
		slog.Warn("sprite load failed, falling back to portrait",
			"character_id", character.ID,
			"filename", sprite.Filename,
			"error", err,
		)
		return r.portraitOrPlaceholder(character)
	}

	return urlOut.URL
}

func (r *Resolver) portraitOrPlaceholder(character *vn.Character) string {
	if character.ImageURL != "" {
		return character.ImageURL
	}
	return r.placeholderURL
}

// findSprite returns the first sprite exactly matching the emotion tag, or
// nil. An empty emotion never matches.
func findSprite(inventory []vn.Sprite, emotion string) *vn.Sprite {
	if emotion == "" {
		return nil
	}
	for i := range inventory {
		if inventory[i].Emotion == emotion {
			return &inventory[i]
		}
	}
	return nil
}
