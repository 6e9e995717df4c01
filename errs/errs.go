package errs

import (
	"errors"
	"fmt"
)

var RingIsFullError = errors.New("ring is full")
var NodeDoesNotExistError = errors.New("node does not exist")
var NoNodesExistError = errors.New("no nodes exist")
var OutOfRangeError = fmt.Errorf("key is out of range")

// Reason returns a stable identifier for one of the ring errors, or "" if err is not one of them.
func Reason(err error) string {
	switch {
	case errors.Is(err, RingIsFullError):
		return "RING_IS_FULL"
	case errors.Is(err, NodeDoesNotExistError):
		return "NODE_DOES_NOT_EXIST"
	case errors.Is(err, NoNodesExistError):
		return "NO_NODES_EXIST"
	case errors.Is(err, OutOfRangeError):
		return "OUT_OF_RANGE"
	}
	return ""
}

// FromReason is the inverse of Reason.
func FromReason(reason string) error {
	switch reason {
	case "RING_IS_FULL":
		return RingIsFullError
	case "NODE_DOES_NOT_EXIST":
		return NodeDoesNotExistError
	case "NO_NODES_EXIST":
		return NoNodesExistError
	case "OUT_OF_RANGE":
		return OutOfRangeError
	}
	return nil
}
