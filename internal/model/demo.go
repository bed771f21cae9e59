package model

import "time"

// DemoSubmission is a demo-days pitch, stored under `demo:<id>`.
// Submissions are append-only: there is no update or delete path.
type DemoSubmission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Project     string `json:"project"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Created     string `json:"created"`
}

// CreatedTime parses the created timestamp; unparseable values sort as
// time zero, the same fallback the updates listing uses.
func (d *DemoSubmission) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, d.Created)
	if err != nil {
		return time.Time{}
	}
	return t
}
