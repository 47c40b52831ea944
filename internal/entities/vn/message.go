package vn

// SenderKind identifies who produced a message.
type SenderKind string

// Sender kinds.
const (
	SenderUser      SenderKind = "user"
	SenderCharacter SenderKind = "character"
	SenderSystem    SenderKind = "system"
)

// Message is the read-only chat record that drives portrait updates.
// The engine never mutates messages; they are supplied by the surrounding
// chat session controller.
type Message struct {
	ID     string
	Sender SenderKind

	// SpeakerID is the group member that produced the message, set when
	// Sender is SenderCharacter.
	SpeakerID string

	Text string

	// Emotion is the free-form emotion tag attached by the reply pipeline.
	// Optional; an empty tag falls back to the class-default emotion.
	Emotion string

	IsGenerating bool
}
