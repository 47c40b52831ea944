package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Eliolocin/GengoTavern-sub001/internal/config"
	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	"github.com/Eliolocin/GengoTavern-sub001/internal/orchestrators/stage"
	"github.com/Eliolocin/GengoTavern-sub001/internal/pkg/clock"
	"github.com/Eliolocin/GengoTavern-sub001/internal/pkg/idgen"
	redisclient "github.com/Eliolocin/GengoTavern-sub001/internal/redis"
	"github.com/Eliolocin/GengoTavern-sub001/internal/repositories/characters"
	"github.com/Eliolocin/GengoTavern-sub001/internal/repositories/sprites"
	"github.com/Eliolocin/GengoTavern-sub001/internal/resolver"
	"github.com/Eliolocin/GengoTavern-sub001/internal/surface"
	"github.com/Eliolocin/GengoTavern-sub001/internal/transition"
)

var (
	scriptPath  string
	stepDelayMs int
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Play a chat script against the stage",
	Long:  `Play a chat script through the stage engine, rendering each frame to the terminal as messages arrive and fades run.`,
	RunE:  runStage,
}

func init() {
	stageCmd.Flags().StringVar(&scriptPath, "script", "", "path to a chat script JSON file (required)")
	stageCmd.Flags().IntVar(&stepDelayMs, "step-delay", 800, "milliseconds between script messages")
	_ = stageCmd.MarkFlagRequired("script")
}

// chatScript is the on-disk script format
type chatScript struct {
	Members  []scriptMember  `json:"members"`
	Messages []scriptMessage `json:"messages"`
}

type scriptMember struct {
	CharacterID  string `json:"characterId"`
	DisplayOrder int32  `json:"displayOrder"`
}

type scriptMessage struct {
	Sender    string `json:"sender"`
	SpeakerID string `json:"speakerId"`
	Text      string `json:"text"`
	Emotion   string `json:"emotion"`
}

func loadScript(path string) (*chatScript, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied script path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read script %s", path)
	}
	var script chatScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, errors.Wrapf(err, "failed to parse script %s", path)
	}
	if len(script.Members) == 0 {
		return nil, errors.InvalidArgument("script has no members")
	}
	return &script, nil
}

func runStage(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, stopping")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	script, err := loadScript(scriptPath)
	if err != nil {
		return err
	}

	svc, cleanup, err := buildStageService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	term, err := surface.NewTerminal(&surface.TerminalConfig{Writer: os.Stdout})
	if err != nil {
		return err
	}

	members := make([]vn.GroupMember, 0, len(script.Members))
	for _, m := range script.Members {
		members = append(members, vn.GroupMember{
			CharacterID:  m.CharacterID,
			DisplayOrder: m.DisplayOrder,
		})
	}

	idGen := idgen.NewUUID("msg")
	stepDelay := time.Duration(stepDelayMs) * time.Millisecond

	// Roster-only update first so everyone enters at their default emotion.
	out, err := svc.UpdateStage(ctx, &stage.UpdateStageInput{Members: members})
	if err != nil {
		return err
	}
	if err := term.Present(out.Frame); err != nil {
		return err
	}

	for _, sm := range script.Messages {
		if ctx.Err() != nil {
			break
		}

		msg := &vn.Message{
			ID:        idGen.Generate(),
			Sender:    vn.SenderKind(sm.Sender),
			SpeakerID: sm.SpeakerID,
			Text:      sm.Text,
			Emotion:   sm.Emotion,
		}

		out, err := svc.UpdateStage(ctx, &stage.UpdateStageInput{
			Members: members,
			Message: msg,
		})
		if err != nil {
			return err
		}
		if err := term.Present(out.Frame); err != nil {
			return err
		}

		if err := watchFrames(ctx, svc, term, stepDelay); err != nil {
			return err
		}
	}

	if _, err := svc.Deactivate(ctx, &stage.DeactivateInput{}); err != nil {
		return err
	}
	slog.Info("script finished", "message_count", len(script.Messages))
	return nil
}

// watchFrames re-renders whenever the frame changes, until the step delay
// elapses. This makes fades visible on the terminal surface.
func watchFrames(ctx context.Context, svc stage.Service, term surface.Surface, total time.Duration) error {
	deadline := time.After(total)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	var last string
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-deadline:
			return nil
		case <-ticker.C:
			out, err := svc.StageView(ctx, &stage.StageViewInput{})
			if err != nil {
				return err
			}
			key := frameKey(out.Frame)
			if key == last {
				continue
			}
			last = key
			if err := term.Present(out.Frame); err != nil {
				return err
			}
		}
	}
}

func frameKey(frame *vn.StageFrame) string {
	data, err := json.Marshal(frame)
	if err != nil {
		return ""
	}
	return string(data)
}

// buildStageService wires the storage, resolver, and orchestrator stack
// from loaded configuration.
func buildStageService(cfg *config.Config) (stage.Service, func(), error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create redis client")
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}

	spriteRepo, err := sprites.NewRedis(&sprites.RedisConfig{
		Client:       client,
		AssetRoot:    cfg.AssetRoot,
		AssetBaseURL: cfg.AssetBaseURL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	charRepo, err := characters.NewRedis(&characters.RedisConfig{Client: client})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	res, err := resolver.New(&resolver.Config{
		SpriteRepo:     spriteRepo,
		DefaultEmotion: cfg.DefaultEmotion,
		PlaceholderURL: cfg.PlaceholderURL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	dwell := cfg.FadeDwell
	if dwell <= 0 {
		dwell = transition.DefaultDwell
	}

	svc, err := stage.NewOrchestrator(&stage.Config{
		CharacterRepo:  charRepo,
		Resolver:       res,
		Clock:          clock.New(),
		IDGenerator:    idgen.NewUUID("update"),
		DefaultEmotion: cfg.DefaultEmotion,
		FadeDwell:      dwell,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return svc, cleanup, nil
}
