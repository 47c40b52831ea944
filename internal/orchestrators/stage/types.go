package stage

import (
	"github.com/Eliolocin/GengoTavern-sub001/internal/entities/vn"
)

// UpdateStageInput defines the request for recomputing the stage. Solo mode
// is a group of one member.
type UpdateStageInput struct {
	// Members is the group roster with layout positions. Order of the slice
	// is irrelevant; slots always render by DisplayOrder ascending.
	Members []vn.GroupMember

	// Message is the most recent chat message, if any.
	Message *vn.Message
}

// UpdateStageOutput defines the response for recomputing the stage
type UpdateStageOutput struct {
	UpdateID string

	// Frame is the immediate view; slots whose resolution is still in
	// flight report IsLoading.
	Frame *vn.StageFrame
}

// StageViewInput defines the request for the current frame
type StageViewInput struct {
	// Empty for now, can be extended later
}

// StageViewOutput defines the response for the current frame
type StageViewOutput struct {
	Frame *vn.StageFrame
}

// DeactivateInput defines the request for leaving VN mode
type DeactivateInput struct {
	// Empty for now, can be extended later
}

// DeactivateOutput defines the response for leaving VN mode
type DeactivateOutput struct {
	// Empty for now, can be extended later
}
