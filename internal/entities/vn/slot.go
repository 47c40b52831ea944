package vn

// FadeState classifies the fade phase a slot is currently rendered with.
type FadeState string

// Fade states.
const (
	FadeStateIn      FadeState = "fade-in"
	FadeStateVisible FadeState = "visible"
	FadeStateOut     FadeState = "fade-out"
)

// StageState is the top-level state of the presentation surface.
type StageState string

// Stage states. There is no terminal state; the machine runs for the
// lifetime of VN mode being active.
const (
	StageIdle    StageState = "idle"
	StageLoading StageState = "loading"
	StageReady   StageState = "ready"
)

// SpriteSlot is the runtime presentation unit for one character's portrait.
// Slots are owned by the stage orchestrator and never persisted.
type SpriteSlot struct {
	CharacterID   string
	CharacterName string

	// ResolvedURL is the latest truth from the resolver. Never empty once
	// resolution has completed; the fallback chain terminates at the global
	// placeholder.
	ResolvedURL string

	// DisplayURL is what is currently rendered. It changes at most once per
	// fade cycle, at the fade-out to fade-in boundary.
	DisplayURL string

	FadeState        FadeState
	DisplayOrder     int32
	IsCurrentSpeaker bool

	// IsLoading is true while the slot's resolution is in flight. The
	// surface shows a loading indicator instead of a stale or blank frame.
	IsLoading bool
}

// StageFrame is one render pass: the ordered slot list plus the surface
// state, as published to the presentation layer.
type StageFrame struct {
	State StageState

	// Slots is ordered by DisplayOrder ascending, independent of message
	// arrival order or resolution completion order.
	Slots []SpriteSlot
}
