package domain

import "time"

// XPTransaction is one XP award in the smallest XP unit.
type XPTransaction struct {
	ObjectID  int       `json:"objectId"`
	Path      string    `json:"path"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditTransaction is one peer-review outcome, type "up" or "down".
type AuditTransaction struct {
	Attrs     map[string]any `json:"attrs"`
	Type      string         `json:"type"`
	ObjectID  int            `json:"objectId"`
	Path      string         `json:"path"`
	Amount    float64        `json:"amount"`
	CreatedAt time.Time      `json:"createdAt"`
}
