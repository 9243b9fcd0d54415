package domain

import "time"

// SkillRecord is the highest-amount transaction for one raw skill type.
// The source query deduplicates on type (descending amount + distinct-on),
// so at most one record per raw "skill_*" type string arrives.
type SkillRecord struct {
	ObjectID  int       `json:"objectId"`
	EventID   int       `json:"eventId"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}
