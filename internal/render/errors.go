package render

import (
	"errors"
	"fmt"
)

// ContractError represents a caller contract violation detected at a
// package boundary. The engine fails fast on malformed input; degenerate
// but valid inputs (empty overall list, single event, zero-duration span)
// never produce a ContractError.
type ContractError struct {
	// Code identifies the error category.
	Code ContractErrorCode

	// Message is a human-readable description.
	Message string

	// Details contains additional context.
	Details map[string]string
}

// ContractErrorCode categorizes contract errors.
type ContractErrorCode string

const (
	// ErrCodeEmptyCluster indicates a cluster was constructed from an
	// empty event list.
	ErrCodeEmptyCluster ContractErrorCode = "EMPTY_CLUSTER"

	// ErrCodeInvalidInput indicates malformed input outside any more
	// specific category.
	ErrCodeInvalidInput ContractErrorCode = "INVALID_INPUT"
)

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsEmptyClusterError returns true if the error is an empty-cluster
// contract violation. Uses errors.As to handle wrapped errors.
func IsEmptyClusterError(err error) bool {
	var ce *ContractError
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeEmptyCluster
	}
	return false
}

// NewEmptyClusterError creates a ContractError for empty cluster
// construction.
func NewEmptyClusterError() *ContractError {
	return &ContractError{
		Code:    ErrCodeEmptyCluster,
		Message: "cluster requires at least one event",
	}
}
