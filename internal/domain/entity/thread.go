package entity

import "time"

// Thread is a named discussion inside a forum channel
type Thread struct {
	ID       string
	Title    string
	Archived bool
}

// Message is a single post in a thread. Only the author is consulted.
type Message struct {
	ID       string
	AuthorID string
}

// ThreadHandle identifies a thread created by the bot
type ThreadHandle struct {
	ID    string
	Title string
}

// RunResult summarizes one execution of the daily scrum job
type RunResult struct {
	RunID          string
	Date           time.Time
	Title          string
	Thread         *ThreadHandle
	PriorThreadID  string
	MissingMembers []Member
	Published      bool
}
