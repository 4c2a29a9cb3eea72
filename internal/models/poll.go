package models

import "time"

// PollOption is one answer of a poll with its running tally.
type PollOption struct {
	Label string `json:"label"`
	Votes int    `json:"votes"`
}

// PollModel is a reader opinion poll. At most one poll is active at a time.
type PollModel struct {
	ID        string       `json:"id"`
	Question  string       `json:"question"`
	Options   []PollOption `json:"options"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created"`
}
