// Package entity defines the JSON envelope shared by API responses.
package entity

// Msg is the standard API response with success status, message text,
// and an optional data object.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg,omitempty"`
	Obj     any    `json:"obj,omitempty"`
}
