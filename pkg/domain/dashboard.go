package domain

// Dashboard is everything one full load of the profile yields, assembled from
// the three sequential queries. The zero EventID sentinel means the user had
// no work in progress when the load ran.
type Dashboard struct {
	User      User
	WIP       []Progress
	Completed []Result
	XP        []XPTransaction
	Audits    []AuditTransaction
	Skills    []SkillRecord
	EventID   int
}
