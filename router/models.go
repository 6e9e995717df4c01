package router

import "net/http"

// ErrorReply pins the HTTP status for an error returned by a handler.
type ErrorReply struct {
	Status int
	Err    error
}

func (e *ErrorReply) Error() string {
	if e.Err == nil {
		return http.StatusText(e.Status)
	}
	return e.Err.Error()
}

func (e *ErrorReply) Unwrap() error {
	return e.Err
}

type ErrorBody struct {
	Error string `json:"error"`
}

type AddReply struct {
	ID uint64 `json:"id"`
}

type NodeReply struct {
	ID uint64 `json:"id"`
}

type SearchReply struct {
	Key  uint64 `json:"key"`
	Node uint64 `json:"node"`
}

type RingReply struct {
	MaxID uint64   `json:"max_id"`
	Nodes []uint64 `json:"nodes"`
}
