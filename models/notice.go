// Package models defines data structures used across the application.
// File: models/notice.go
package models

// ----------------------- notice model -----------------------

// NoticeKind classifies a notice as a success or an error.
type NoticeKind string

// Notice kinds.
const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// NoticeChannel selects how a notice is presented to the user.
type NoticeChannel string

// Notice channels. Inline notices appear in the status banner and auto-hide;
// modal notices demand an acknowledgement.
const (
	ChannelInline NoticeChannel = "inline"
	ChannelModal  NoticeChannel = "modal"
)

// Notice is a transient user-facing message produced by a roster operation.
// Every operation outcome is reported through this one type; the channel is
// chosen by policy at the call site.
type Notice struct {
	Text    string        `json:"text"`
	Kind    NoticeKind    `json:"kind"`
	Channel NoticeChannel `json:"channel"`
}
