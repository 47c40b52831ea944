// Package stage implements the group portrait orchestrator for VN mode. It
// owns one transition-controller-backed slot per live group member,
// recomputes target emotions per incoming message, and publishes ordered,
// renderable frames.
package stage

//go:generate mockgen -destination=mock/mock_service.go -package=stagemock github.com/Eliolocin/GengoTavern-sub001/internal/orchestrators/stage Service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
	"github.com/Eliolocin/GengoTavern-sub001/internal/pkg/clock"
	"github.com/Eliolocin/GengoTavern-sub001/internal/pkg/idgen"
	"github.com/Eliolocin/GengoTavern-sub001/internal/repositories/characters"
	"github.com/Eliolocin/GengoTavern-sub001/internal/resolver"
	"github.com/Eliolocin/GengoTavern-sub001/internal/transition"
)

// Service defines the stage operations for VN mode
type Service interface {
	// UpdateStage recomputes every member's portrait for a new message or
	// roster change. Resolution runs concurrently per member; the returned
	// frame reflects the immediate (possibly loading) state.
	UpdateStage(ctx context.Context, input *UpdateStageInput) (*UpdateStageOutput, error)

	// StageView returns the current frame without mutating anything.
	StageView(ctx context.Context, input *StageViewInput) (*StageViewOutput, error)

	// Deactivate tears down all slots and cancels pending transitions.
	// Used when the character set changes wholesale or VN mode is exited.
	Deactivate(ctx context.Context, input *DeactivateInput) (*DeactivateOutput, error)
}

// SpriteResolver resolves one character's portrait URL for a target emotion.
// It never fails; the fallback chain terminates at a placeholder.
type SpriteResolver interface {
	Resolve(ctx context.Context, character *vn.Character, targetEmotion string) string
}

// Config holds the dependencies for the stage orchestrator
type Config struct {
	CharacterRepo characters.Repository
	Resolver      SpriteResolver
	Clock         clock.Clock
	IDGenerator   idgen.Generator

	// DefaultEmotion is the class-default target for non-speaking members
	// and untagged messages. Defaults to resolver.DefaultEmotion.
	DefaultEmotion string

	// FadeDwell overrides the transition default when positive.
	FadeDwell time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	charRepo       characters.Repository
	resolver       SpriteResolver
	clk            clock.Clock
	idGen          idgen.Generator
	defaultEmotion string
	dwell          time.Duration

	// gen is the update generation marker. Every resolution completion is
	// checked against its slot's generation before being applied, so a
	// completion for a superseded update is discarded unapplied.
	mu    sync.Mutex
	gen   uint64
	slots map[string]*slot
}

// slot is the engine-owned runtime state for one group member's portrait.
type slot struct {
	characterID   string
	characterName string
	displayOrder  int32
	isSpeaker     bool
	loading       bool
	gen           uint64
	resolvedURL   string
	ctrl          *transition.Controller
}

// NewOrchestrator creates a new stage orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	defaultEmotion := cfg.DefaultEmotion
	if defaultEmotion == "" {
		defaultEmotion = resolver.DefaultEmotion
	}

	return &orchestrator{
		charRepo:       cfg.CharacterRepo,
		resolver:       cfg.Resolver,
		clk:            cfg.Clock,
		idGen:          cfg.IDGenerator,
		defaultEmotion: defaultEmotion,
		dwell:          cfg.FadeDwell,
		slots:          make(map[string]*slot),
	}, nil
}

func (o *orchestrator) UpdateStage(ctx context.Context, input *UpdateStageInput) (*UpdateStageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	updateID := o.idGen.Generate()

	members := make([]vn.GroupMember, len(input.Members))
	copy(members, input.Members)
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].DisplayOrder < members[j].DisplayOrder
	})

	// Fetch the roster up front. Members without a character record drop
	// out of this pass; the rest of the group renders normally.
	type liveMember struct {
		member    vn.GroupMember
		character *vn.Character
	}
	live := make([]liveMember, 0, len(members))
	for _, m := range members {
		out, err := o.charRepo.Get(ctx, characters.GetInput{ID: m.CharacterID})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.Warn("group member has no character record, omitting slot",
					"character_id", m.CharacterID,
					"update_id", updateID,
				)
			} else {
				slog.Warn("character lookup failed, omitting slot",
					"character_id", m.CharacterID,
					"update_id", updateID,
					"error", err,
				)
			}
			continue
		}
		live = append(live, liveMember{member: m, character: out.Character})
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.gen++
	gen := o.gen

	// Discard slots for members no longer on stage, cancelling their
	// pending fades.
	keep := mapset.New[string]()
	for _, lm := range live {
		keep.Put(lm.member.CharacterID)
	}
	for id, s := range o.slots {
		if !keep.Has(id) {
			s.ctrl.Stop()
			delete(o.slots, id)
		}
	}

	// Detached from the caller's deadline: in-flight resolutions run to
	// completion and stale results are dropped by the generation check.
	resolveCtx := context.WithoutCancel(ctx)

	for _, lm := range live {
		id := lm.member.CharacterID

		s, ok := o.slots[id]
		if !ok {
			ctrl, err := transition.New(&transition.Config{Clock: o.clk, Dwell: o.dwell})
			if err != nil {
				return nil, errors.Wrap(err, "failed to create transition controller")
			}
			s = &slot{characterID: id, ctrl: ctrl}
			o.slots[id] = s
		}

		s.characterName = lm.character.Name
		s.displayOrder = lm.member.DisplayOrder
		s.isSpeaker = isCurrentSpeaker(input.Message, id)
		s.loading = true
		s.gen = gen

		emotion := o.targetEmotion(input.Message, id)
		character := lm.character

		go func() {
			url := o.resolver.Resolve(resolveCtx, character, emotion)

			o.mu.Lock()
			defer o.mu.Unlock()

			current, ok := o.slots[character.ID]
			if !ok || current != s || s.gen != gen {
				// Superseded while resolving; discard unapplied.
				return
			}
			s.loading = false
			s.resolvedURL = url
			s.ctrl.SetResolvedURL(url)
		}()
	}

	slog.Info("stage updated",
		"update_id", updateID,
		"member_count", len(members),
		"slot_count", len(live),
	)

	return &UpdateStageOutput{
		UpdateID: updateID,
		Frame:    o.frameLocked(),
	}, nil
}

func (o *orchestrator) StageView(_ context.Context, _ *StageViewInput) (*StageViewOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &StageViewOutput{Frame: o.frameLocked()}, nil
}

func (o *orchestrator) Deactivate(_ context.Context, _ *DeactivateInput) (*DeactivateOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for id, s := range o.slots {
		s.ctrl.Stop()
		delete(o.slots, id)
	}
	o.gen++

	slog.Info("stage deactivated")

	return &DeactivateOutput{}, nil
}

// targetEmotion applies the per-member emotion rule: the speaker gets the
// message's emotion tag, everyone else the class default.
func (o *orchestrator) targetEmotion(message *vn.Message, characterID string) string {
	if isCurrentSpeaker(message, characterID) && message.Emotion != "" {
		return message.Emotion
	}
	return o.defaultEmotion
}

// isCurrentSpeaker reports whether the message was uttered by this member.
// User and system messages mark no slot as current speaker.
func isCurrentSpeaker(message *vn.Message, characterID string) bool {
	return message != nil &&
		message.Sender == vn.SenderCharacter &&
		message.SpeakerID == characterID
}

// frameLocked builds the renderable frame: slots ordered by display order,
// surface state derived from slot progress.
func (o *orchestrator) frameLocked() *vn.StageFrame {
	slots := make([]vn.SpriteSlot, 0, len(o.slots))
	loading := false

	for _, s := range o.slots {
		snap := s.ctrl.Snapshot()
		slots = append(slots, vn.SpriteSlot{
			CharacterID:      s.characterID,
			CharacterName:    s.characterName,
			ResolvedURL:      snap.ResolvedURL,
			DisplayURL:       snap.DisplayURL,
			FadeState:        fadeState(snap.State),
			DisplayOrder:     s.displayOrder,
			IsCurrentSpeaker: s.isSpeaker,
			IsLoading:        s.loading,
		})
		if s.loading {
			loading = true
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].DisplayOrder < slots[j].DisplayOrder
	})

	state := vn.StageReady
	switch {
	case len(slots) == 0:
		state = vn.StageIdle
	case loading:
		state = vn.StageLoading
	}

	return &vn.StageFrame{State: state, Slots: slots}
}

// fadeState maps controller states onto the rendered fade class. NoSprite
// renders as visible; the loading flag covers the not-yet-resolved case.
func fadeState(s transition.State) vn.FadeState {
	switch s {
	case transition.StateFadeOut:
		return vn.FadeStateOut
	case transition.StateFadeIn:
		return vn.FadeStateIn
	default:
		return vn.FadeStateVisible
	}
}
