// Package surface renders stage frames. The engine computes frames; a
// Surface owns how they are shown.
package surface

import (
	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
)

// Surface presents stage frames to the user
type Surface interface {
	// Present renders one frame. Implementations must tolerate being called
	// with the same frame repeatedly.
	Present(frame *vn.StageFrame) error
}
