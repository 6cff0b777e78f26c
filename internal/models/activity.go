package models

// Activity describes one extracurricular activity and its roster of
// participant emails. The JSON field names are part of the public API.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"` // advisory capacity, not enforced
	Participants    []string `json:"participants"`     // unique emails, in signup order
}

// Clone returns a copy of the activity whose participants slice is detached
// from the original, so callers can hand it out without exposing store state.
// Participants is always non-nil in the copy so it serializes as [].
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}
