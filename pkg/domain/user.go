package domain

import "time"

// User is the profile snapshot returned by the data endpoint. Immutable per
// dashboard load.
type User struct {
	ID           int            `json:"id"`
	Login        string         `json:"login"`
	Attrs        map[string]any `json:"attrs"`
	Campus       string         `json:"campus"`
	Labels       []Label        `json:"labels"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	AuditRatio   float64        `json:"auditRatio"`
	TotalUp      float64        `json:"totalUp"`
	TotalUpBonus float64        `json:"totalUpBonus"`
	TotalDown    float64        `json:"totalDown"`
}

// Label is a campus cohort label attached to a user.
type Label struct {
	LabelID   int    `json:"labelId"`
	LabelName string `json:"labelName"`
}

// attr returns a string attribute from the free-form attrs mapping.
func (u User) attr(key string) string {
	if u.Attrs == nil {
		return ""
	}
	if v, ok := u.Attrs[key].(string); ok {
		return v
	}
	return ""
}

// FullName joins the firstName and lastName attributes.
func (u User) FullName() string {
	first, last := u.attr("firstName"), u.attr("lastName")
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// Email returns the email attribute, if present.
func (u User) Email() string { return u.attr("email") }

// Gender returns the gender attribute, if present.
func (u User) Gender() string { return u.attr("gender") }

// Nationality returns the nationality attribute, if present.
func (u User) Nationality() string { return u.attr("nationality") }

// FirstLabel returns the name of the first cohort label, or "" when none.
func (u User) FirstLabel() string {
	if len(u.Labels) == 0 {
		return ""
	}
	return u.Labels[0].LabelName
}
