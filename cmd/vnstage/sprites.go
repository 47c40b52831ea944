package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eliolocin/GengoTavern-sub001/internal/config"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	redisclient "github.com/Eliolocin/GengoTavern-sub001/internal/redis"
	"github.com/Eliolocin/GengoTavern-sub001/internal/repositories/sprites"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Manage sprite inventories",
}

var spritesScanCmd = &cobra.Command{
	Use:   "scan <character-id>",
	Short: "Scan a character's sprite folder and sync the inventory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpritesScan,
}

func init() {
	spritesCmd.AddCommand(spritesScanCmd)
}

func runSpritesScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	defer func() { _ = client.Close() }()

	repo, err := sprites.NewRedis(&sprites.RedisConfig{
		Client:       client,
		AssetRoot:    cfg.AssetRoot,
		AssetBaseURL: cfg.AssetBaseURL,
	})
	if err != nil {
		return err
	}

	out, err := repo.ScanAndSync(cmd.Context(), sprites.ScanAndSyncInput{CharacterID: args[0]})
	if err != nil {
		return err
	}

	if len(out.Sprites) == 0 {
		fmt.Printf("no sprites found for %s\n", args[0])
		return nil
	}

	for _, s := range out.Sprites {
		fmt.Printf("%s\t%s\n", s.Emotion, s.Filename)
	}
	fmt.Printf("synced %d sprites for %s\n", len(out.Sprites), args[0])
	return nil
}
