package listing

import (
	"errors"
	"fmt"
)

// ListingStatus represents the current state of a listing in its lifecycle.
type ListingStatus string

const (
	StatusActive   ListingStatus = "active"
	StatusInactive ListingStatus = "inactive"
	StatusAdopted  ListingStatus = "adopted"
)

// ErrInvalidTransition is returned for a status change the lifecycle forbids.
var ErrInvalidTransition = errors.New("invalid listing status transition")

var statusLabels = map[ListingStatus]string{
	StatusActive:   "刊登中",
	StatusInactive: "已下架",
	StatusAdopted:  "已領養",
}

// validTransitions defines the state machine for listing status transitions.
var validTransitions = map[ListingStatus][]ListingStatus{
	StatusActive:   {StatusInactive, StatusAdopted},
	StatusInactive: {StatusActive, StatusAdopted},
	StatusAdopted:  {},
}

// IsValid returns true if the status is a recognized listing status.
func (s ListingStatus) IsValid() bool {
	_, exists := validTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s ListingStatus) CanTransitionTo(target ListingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s ListingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// Label returns the badge text shown on the listing card.
func (s ListingStatus) Label() string {
	return statusLabels[s]
}

// Transition checks that moving from s to target is allowed.
func (s ListingStatus) Transition(target ListingStatus) error {
	if !s.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return nil
}

// String returns the string representation of the status.
func (s ListingStatus) String() string {
	return string(s)
}

// ParseListingStatus converts a string to a ListingStatus, returning an error if invalid.
func ParseListingStatus(s string) (ListingStatus, error) {
	status := ListingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid listing status: %s", s)
	}
	return status, nil
}
