package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
	"github.com/Eliolocin/GengoTavern-sub001/internal/errors"
)

var (
	speakerStyle = color.New(color.FgLightYellow, color.Bold)
	nameStyle    = color.New(color.FgLightCyan)
	dimStyle     = color.New(color.FgGray)
	fadeStyle    = color.New(color.FgMagenta)
)

// TerminalConfig holds the dependencies for a TerminalSurface
type TerminalConfig struct {
	Writer io.Writer
}

// Validate ensures all required dependencies are provided
func (c *TerminalConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Writer == nil {
		return errors.InvalidArgument("writer is required")
	}
	return nil
}

// TerminalSurface renders frames as text, one line per slot in display
// order. It stands in for the visual renderer during development and in
// the CLI.
type TerminalSurface struct {
	w io.Writer
}

// NewTerminal creates a terminal surface writing to the configured writer
func NewTerminal(cfg *TerminalConfig) (*TerminalSurface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &TerminalSurface{w: cfg.Writer}, nil
}

// Present renders one frame
func (t *TerminalSurface) Present(frame *vn.StageFrame) error {
	if frame == nil {
		return errors.InvalidArgument("frame is required")
	}

	var b strings.Builder

	switch frame.State {
	case vn.StageIdle:
		b.WriteString(dimStyle.Sprint("stage: idle"))
		b.WriteByte('\n')
	case vn.StageLoading:
		b.WriteString(dimStyle.Sprint("stage: loading"))
		b.WriteByte('\n')
	default:
		b.WriteString(dimStyle.Sprint("stage: ready"))
		b.WriteByte('\n')
	}

	for _, slot := range frame.Slots {
		marker := "  "
		name := nameStyle.Sprint(slot.CharacterName)
		if slot.IsCurrentSpeaker {
			marker = speakerStyle.Sprint("▶ ")
			name = speakerStyle.Sprint(slot.CharacterName)
		}

		b.WriteString(marker)
		b.WriteString(name)

		if slot.IsLoading {
			b.WriteString(dimStyle.Sprint(" [loading]"))
		} else if slot.DisplayURL != "" {
			b.WriteString("  ")
			b.WriteString(slot.DisplayURL)
		}

		if slot.FadeState != vn.FadeStateVisible {
			b.WriteString(fadeStyle.Sprintf(" (%s)", slot.FadeState))
		}

		b.WriteByte('\n')
	}

	if _, err := fmt.Fprint(t.w, b.String()); err != nil {
		return errors.Wrap(err, "failed to write frame")
	}
	return nil
}
