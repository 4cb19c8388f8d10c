package schema

import "time"

// LabelAssignment is one persisted label decision: the current label for a
// record identifier within a session. Last write wins; no history is kept.
type LabelAssignment struct {
	RowIndex  int        `json:"row_index"`
	Label     LabelValue `json:"label"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// SessionStatus holds status information about the session store.
type SessionStatus struct {
	Backend          string `json:"backend"`
	Connected        bool   `json:"connected"`
	Sessions         int    `json:"sessions"`
	TotalAssignments int    `json:"total_assignments"`
	DBPath           string `json:"db_path,omitempty"` // Only set for the sqlite backend
}
