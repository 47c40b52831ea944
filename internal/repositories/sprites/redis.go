package sprites

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	"github.com/Eliolocin/GengoTavern-sub001/internal/pkg/clock"
	redisclient "github.com/Eliolocin/GengoTavern-sub001/internal/redis"
)

const (
	inventoryKeyPrefix = "sprites:"
	scannedIndexKey    = "sprites:scanned"

	// Error messages
	errCharacterIDEmpty = "character ID cannot be empty"
	errFilenameEmpty    = "filename cannot be empty"
)

// spriteExtensions are the asset file types recognized by the scanner.
var spriteExtensions = map[string]bool{
	".png":  true,
	".webp": true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type redisRepository struct {
	client    redisclient.Client
	clock     clock.Clock
	assetRoot string
	baseURL   string
}

// RedisConfig contains configuration for the Redis sprite repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock

	// AssetRoot is the directory holding one sprite folder per character.
	AssetRoot string

	// AssetBaseURL, when set, is used for materialized URLs instead of
	// file:// paths.
	AssetBaseURL string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.AssetRoot == "" {
		vb.RequiredField("AssetRoot")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed sprite repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client:    cfg.Client,
		clock:     c,
		assetRoot: cfg.AssetRoot,
		baseURL:   strings.TrimRight(cfg.AssetBaseURL, "/"),
	}, nil
}

func (r *redisRepository) ScanAndSync(ctx context.Context, input ScanAndSyncInput) (*ScanAndSyncOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	inventory, err := r.scanDir(input.CharacterID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(inventory)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sprite inventory")
	}

	key := inventoryKeyPrefix + input.CharacterID

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.Set(ctx, key+":synced_at", r.clock.Now().Unix(), 0)
	pipe.SAdd(ctx, scannedIndexKey, input.CharacterID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to sync sprite inventory")
	}

	slog.Debug("sprite inventory synced",
		"character_id", input.CharacterID,
		"sprite_count", len(inventory),
	)

	return &ScanAndSyncOutput{Sprites: inventory}, nil
}

func (r *redisRepository) LoadAsURL(ctx context.Context, input LoadAsURLInput) (*LoadAsURLOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Filename == "" {
		return nil, errors.InvalidArgument(errFilenameEmpty)
	}
	// Reject anything that could escape the character's asset folder.
	if input.Filename != filepath.Base(input.Filename) {
		return nil, errors.InvalidArgumentf("invalid sprite filename %q", input.Filename)
	}

	path := filepath.Join(r.assetRoot, input.CharacterID, input.Filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("sprite asset %s not found for character %s",
				input.Filename, input.CharacterID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to stat sprite asset")
	}

	if r.baseURL != "" {
		u, err := url.JoinPath(r.baseURL, input.CharacterID, input.Filename)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build sprite URL")
		}
		return &LoadAsURLOutput{URL: u}, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve sprite path")
	}
	return &LoadAsURLOutput{URL: "file://" + filepath.ToSlash(abs)}, nil
}

func (r *redisRepository) Inventory(ctx context.Context, input InventoryInput) (*InventoryOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := inventoryKeyPrefix + input.CharacterID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &InventoryOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get sprite inventory")
	}

	var inventory []vn.Sprite
	if err := json.Unmarshal([]byte(result), &inventory); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal sprite inventory")
	}

	return &InventoryOutput{Sprites: inventory}, nil
}

// scanDir reads the character's asset folder. Emotion tag = filename stem,
// inventory order = directory order (lexicographic, per os.ReadDir).
func (r *redisRepository) scanDir(characterID string) ([]vn.Sprite, error) {
	dir := filepath.Join(r.assetRoot, characterID)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []vn.Sprite{}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read sprite directory")
	}

	inventory := make([]vn.Sprite, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !spriteExtensions[ext] {
			continue
		}
		inventory = append(inventory, vn.Sprite{
			Emotion:  strings.TrimSuffix(name, filepath.Ext(name)),
			Filename: name,
		})
	}

	return inventory, nil
}
