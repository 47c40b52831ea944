package characters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	"github.com/Eliolocin/GengoTavern-sub001/internal/pkg/clock"
	"github.com/Eliolocin/GengoTavern-sub001/internal/repositories/characters"
	"github.com/Eliolocin/GengoTavern-sub001/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	cleanup func()
	repo    characters.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := characters.NewRedis(&characters.RedisConfig{
		Client: client,
		Clock:  clock.NewManual(time.Unix(1700000000, 0)),
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func testCharacter(id, name string) *vn.Character {
	return &vn.Character{
		ID:       id,
		Name:     name,
		ImageURL: "portraits/" + id + ".png",
		Sprites: []vn.Sprite{
			{Emotion: "neutral", Filename: "neutral.png"},
			{Emotion: "joy", Filename: "joy.png"},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, characters.CreateInput{
		Character: testCharacter("char_aoi", "Aoi"),
	})
	s.Require().NoError(err)
	s.Equal(int64(1700000000), created.Character.CreatedAt)

	got, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char_aoi"})
	s.Require().NoError(err)
	s.Equal("Aoi", got.Character.Name)
	s.Equal("portraits/char_aoi.png", got.Character.ImageURL)
	s.Len(got.Character.Sprites, 2)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: testCharacter("char_aoi", "Aoi")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, characters.CreateInput{Character: testCharacter("char_aoi", "Aoi")})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, characters.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, characters.CreateInput{Character: &vn.Character{Name: "no id"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, characters.GetInput{ID: "char_missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, characters.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
	_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: testCharacter("char_beni", "Beni")})
	s.Require().NoError(err)
	_, err = s.repo.Create(s.ctx, characters.CreateInput{Character: testCharacter("char_aoi", "Aoi")})
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, characters.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("char_aoi", out.Characters[0].ID)
	s.Equal("char_beni", out.Characters[1].ID)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, characters.CreateInput{Character: testCharacter("char_aoi", "Aoi")})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, characters.DeleteInput{ID: "char_aoi"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, characters.GetInput{ID: "char_aoi"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, characters.DeleteInput{ID: "char_aoi"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
