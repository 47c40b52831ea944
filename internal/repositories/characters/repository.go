// Package characters provides the interface for character roster persistence
package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=charactersmock github.com/Eliolocin/GengoTavern-sub001/internal/repositories/characters Repository

import (
	"context"

	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
)

// Repository defines the interface for character roster persistence. The
// engine itself only reads; Create and Delete exist for the surrounding
// app's editors and for fixtures.
type Repository interface {
	// Create creates a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves all characters in the roster
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete deletes a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *vn.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *vn.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *vn.Character
}

// ListInput defines the input for listing characters
type ListInput struct {
	// Empty for now, can be extended later
}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*vn.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct {
	// Empty for now, can be extended later
}
