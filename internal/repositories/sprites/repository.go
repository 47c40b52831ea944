// Package sprites provides the interface for sprite asset inventory and
// URL materialization
package sprites

//go:generate mockgen -destination=mock/mock_repository.go -package=spritesmock github.com/Eliolocin/GengoTavern-sub001/internal/repositories/sprites Repository

import (
	"context"

	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
)

// Repository defines sprite asset access for the VN engine. The engine only
// ever reads; asset creation and deletion happen in unrelated collaborators,
// which is why ScanAndSync exists at all.
type Repository interface {
	// ScanAndSync rescans the character's on-disk sprite inventory, persists
	// it to the cache, and returns the fresh inventory. Idempotent. A missing
	// asset directory yields an empty inventory, not an error.
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.Internal for storage failures
	ScanAndSync(ctx context.Context, input ScanAndSyncInput) (*ScanAndSyncOutput, error)

	// LoadAsURL materializes a displayable URL for one sprite asset.
	// Returns errors.InvalidArgument for empty IDs or filenames
	// Returns errors.NotFound when the asset does not exist
	// Returns errors.Unavailable for storage failures
	LoadAsURL(ctx context.Context, input LoadAsURLInput) (*LoadAsURLOutput, error)

	// Inventory returns the last synced inventory without rescanning disk.
	// Diagnostic surface only; resolution always goes through ScanAndSync.
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.Internal for storage failures
	Inventory(ctx context.Context, input InventoryInput) (*InventoryOutput, error)
}

// ScanAndSyncInput defines the input for scanning a character's sprites
type ScanAndSyncInput struct {
	CharacterID string
}

// ScanAndSyncOutput defines the output for scanning a character's sprites
type ScanAndSyncOutput struct {
	// Sprites is the inventory in stored (directory) order.
	Sprites []vn.Sprite
}

// LoadAsURLInput defines the input for materializing a sprite URL
type LoadAsURLInput struct {
	CharacterID string
	Filename    string
}

// LoadAsURLOutput defines the output for materializing a sprite URL
type LoadAsURLOutput struct {
	URL string
}

// InventoryInput defines the input for reading a cached inventory
type InventoryInput struct {
	CharacterID string
}

// InventoryOutput defines the output for reading a cached inventory
type InventoryOutput struct {
	Sprites []vn.Sprite
}
