package vn

// GroupMember references a Character participating in a group chat.
type GroupMember struct {
	CharacterID string

	// DisplayOrder is the fixed left-to-right layout position assigned to
	// the member, unique within the group. It has no bearing on
	// conversational turn order.
	DisplayOrder int32
}
