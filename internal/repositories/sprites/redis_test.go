package sprites_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	"github.com/Eliolocin/GengoTavern-sub001/internal/repositories/sprites"
	"github.com/Eliolocin/GengoTavern-sub001/internal/testutils"
)

const testCharID = "char_momiji"

type RedisRepositoryTestSuite struct {
	suite.Suite
	cleanup   func()
	assetRoot string
	repo      sprites.Repository
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.assetRoot = s.T().TempDir()

	repo, err := sprites.NewRedis(&sprites.RedisConfig{
		Client:    client,
		AssetRoot: s.assetRoot,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) writeAsset(characterID, filename string) {
	dir := filepath.Join(s.assetRoot, characterID)
	s.Require().NoError(os.MkdirAll(dir, 0o755))
	s.Require().NoError(os.WriteFile(filepath.Join(dir, filename), []byte("png"), 0o644))
}

func (s *RedisRepositoryTestSuite) TestScanAndSync() {
	s.Run("returns inventory in directory order", func() {
		s.writeAsset(testCharID, "neutral.png")
		s.writeAsset(testCharID, "joy.png")
		s.writeAsset(testCharID, "anger.webp")
		s.writeAsset(testCharID, "notes.txt") // ignored, not an image

		output, err := s.repo.ScanAndSync(s.ctx, sprites.ScanAndSyncInput{CharacterID: testCharID})

		s.NoError(err)
		s.Require().NotNil(output)
		s.Equal([]vn.Sprite{
			{Emotion: "anger", Filename: "anger.webp"},
			{Emotion: "joy", Filename: "joy.png"},
			{Emotion: "neutral", Filename: "neutral.png"},
		}, output.Sprites)
	})

	s.Run("missing directory yields empty inventory", func() {
		output, err := s.repo.ScanAndSync(s.ctx, sprites.ScanAndSyncInput{CharacterID: "char_unknown"})

		s.NoError(err)
		s.Require().NotNil(output)
		s.Empty(output.Sprites)
	})

	s.Run("picks up assets added after a previous scan", func() {
		s.writeAsset(testCharID, "neutral.png")
		_, err := s.repo.ScanAndSync(s.ctx, sprites.ScanAndSyncInput{CharacterID: testCharID})
		s.Require().NoError(err)

		s.writeAsset(testCharID, "surprise.png")
		output, err := s.repo.ScanAndSync(s.ctx, sprites.ScanAndSyncInput{CharacterID: testCharID})

		s.NoError(err)
		s.Len(output.Sprites, 2)
	})

	s.Run("error on empty character ID", func() {
		output, err := s.repo.ScanAndSync(s.ctx, sprites.ScanAndSyncInput{})

		s.Nil(output)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestLoadAsURL() {
	s.Run("materializes file URL for existing asset", func() {
		s.writeAsset(testCharID, "joy.png")

		output, err := s.repo.LoadAsURL(s.ctx, sprites.LoadAsURLInput{
			CharacterID: testCharID,
			Filename:    "joy.png",
		})

		s.NoError(err)
		s.Require().NotNil(output)
		s.Contains(output.URL, "file://")
		s.Contains(output.URL, "joy.png")
	})

	s.Run("error when asset does not exist", func() {
		output, err := s.repo.LoadAsURL(s.ctx, sprites.LoadAsURLInput{
			CharacterID: testCharID,
			Filename:    "missing.png",
		})

		s.Nil(output)
		s.True(errors.IsNotFound(err))
	})

	s.Run("error on path escape attempt", func() {
		output, err := s.repo.LoadAsURL(s.ctx, sprites.LoadAsURLInput{
			CharacterID: testCharID,
			Filename:    "../other/joy.png",
		})

		s.Nil(output)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestLoadAsURL_WithBaseURL() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	defer cleanup()

	repo, err := sprites.NewRedis(&sprites.RedisConfig{
		Client:       client,
		AssetRoot:    s.assetRoot,
		AssetBaseURL: "https://cdn.example.com/sprites/",
	})
	s.Require().NoError(err)

	s.writeAsset(testCharID, "joy.png")

	output, err := repo.LoadAsURL(s.ctx, sprites.LoadAsURLInput{
		CharacterID: testCharID,
		Filename:    "joy.png",
	})

	s.NoError(err)
	s.Equal("https://cdn.example.com/sprites/"+testCharID+"/joy.png", output.URL)
}

func (s *RedisRepositoryTestSuite) TestInventory() {
	s.Run("returns last synced inventory", func() {
		s.writeAsset(testCharID, "neutral.png")
		_, err := s.repo.ScanAndSync(s.ctx, sprites.ScanAndSyncInput{CharacterID: testCharID})
		s.Require().NoError(err)

		output, err := s.repo.Inventory(s.ctx, sprites.InventoryInput{CharacterID: testCharID})

		s.NoError(err)
		s.Equal([]vn.Sprite{{Emotion: "neutral", Filename: "neutral.png"}}, output.Sprites)
	})

	s.Run("empty inventory when never scanned", func() {
		output, err := s.repo.Inventory(s.ctx, sprites.InventoryInput{CharacterID: "char_never"})

		s.NoError(err)
		s.Empty(output.Sprites)
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
