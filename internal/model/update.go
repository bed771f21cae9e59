package model

import "time"

// Update types. Anything else is rejected at the API boundary.
const (
	UpdateTypePost  = "post"
	UpdateTypeEvent = "event"
)

// EventDetails holds the optional structured fields of an event update.
// The whole object is omitted from storage when every field is empty;
// an empty object is never persisted.
type EventDetails struct {
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// IsEmpty reports whether no field carries a value.
func (e *EventDetails) IsEmpty() bool {
	return e == nil || (e.Date == "" && e.Time == "" && e.Location == "" && e.Duration == "")
}

// Update is a community announcement or event, stored as a JSON blob in
// the KV store under `update:<id>`. Timestamps are kept as RFC3339
// strings exactly as persisted; sorting parses them and treats anything
// unparseable as time zero.
type Update struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Content  string        `json:"content"`
	Language string        `json:"language"`
	Type     string        `json:"type"`
	Tags     []string      `json:"tags"`
	Event    *EventDetails `json:"event,omitempty"`
	Created  string        `json:"created"`
	Updated  string        `json:"updated,omitempty"`
	AuthorID string        `json:"authorId,omitempty"`
}

// CreatedTime parses the created timestamp for ordering purposes.
func (u *Update) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, u.Created)
	if err != nil {
		return time.Time{}
	}
	return t
}
