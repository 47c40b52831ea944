package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Eliolocin/GengoTavern-sub001/internal/config"
	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	redisclient "github.com/Eliolocin/GengoTavern-sub001/internal/redis"
	"github.com/Eliolocin/GengoTavern-sub001/internal/repositories/characters"
)

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "Manage the character roster",
}

var charactersImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import characters from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runCharactersImport,
}

var charactersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the character roster",
	RunE:  runCharactersList,
}

func init() {
	charactersCmd.AddCommand(charactersImportCmd)
	charactersCmd.AddCommand(charactersListCmd)
}

// characterRecord is the on-disk import format
type characterRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

func newCharacterRepo() (characters.Repository, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	cleanup := func() { _ = client.Close() }

	repo, err := characters.NewRedis(&characters.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}

func runCharactersImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-supplied import path
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}

	var records []characterRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return errors.Wrapf(err, "failed to parse %s", args[0])
	}

	repo, cleanup, err := newCharacterRepo()
	if err != nil {
		return err
	}
	defer cleanup()

	imported := 0
	for _, rec := range records {
		_, err := repo.Create(cmd.Context(), characters.CreateInput{
			Character: &vn.Character{
				ID:       rec.ID,
				Name:     rec.Name,
				ImageURL: rec.ImageURL,
			},
		})
		if err != nil {
			if errors.IsAlreadyExists(err) {
				fmt.Printf("skipping %s: already in roster\n", rec.ID)
				continue
			}
			return err
		}
		imported++
	}

	fmt.Printf("imported %d of %d characters\n", imported, len(records))
	return nil
}

func runCharactersList(cmd *cobra.Command, args []string) error {
	repo, cleanup, err := newCharacterRepo()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := repo.List(cmd.Context(), characters.ListInput{})
	if err != nil {
		return err
	}

	if len(out.Characters) == 0 {
		fmt.Println("roster is empty")
		return nil
	}

	for _, c := range out.Characters {
		portrait := c.ImageURL
		if portrait == "" {
			portrait = "(no portrait)"
		}
		fmt.Printf("%s\t%s\t%s\n", c.ID, c.Name, portrait)
	}
	return nil
}
