package models

import "time"

// TimeFormat is the timestamp layout used in messages and log entries.
const TimeFormat = "2006-01-02 15:04:05"

// Message is a single entry in the global feed. Messages are immutable
// once appended; ProfilePic is a snapshot of the author's avatar at
// post time.
type Message struct {
	Username   string `json:"username"`
	Body       string `json:"message"`
	ProfilePic string `json:"profile_pic"`
	Timestamp  string `json:"timestamp"`
}

// Now returns the current time in the store timestamp layout.
func Now() string {
	return time.Now().Format(TimeFormat)
}
