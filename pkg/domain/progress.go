package domain

import "time"

// Progress is a work-in-progress item: started, not yet graded, not done.
// The source query orders these ascending by creation time.
type Progress struct {
	ID        int       `json:"id"`
	EventID   int       `json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Path      string    `json:"path"`
	Group     Group     `json:"group"`
}

// Result is a completed project result. The source query orders these
// descending by creation time.
type Result struct {
	ObjectID  int       `json:"objectId"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"createdAt"`
	Group     Group     `json:"group"`
}

// Group carries the members who worked on a project together.
type Group struct {
	Members []Member `json:"members"`
}

// Member is one participant in a project group.
type Member struct {
	UserLogin string `json:"userLogin"`
}
