// Package lifecycle owns the reservation state machine: which statuses exist,
// which transitions the table permits, and which of those a given caller role
// may request.
package lifecycle

import (
	"queueup/shared/constant"
	"queueup/shared/failure"
	"slices"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// transitions maps each status to the statuses reachable from it. Completed
// and cancelled are terminal.
var transitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// clientCancellableFrom lists the statuses a client may cancel out of. Clients
// may never request any other target status.
var clientCancellableFrom = []string{StatusPending, StatusConfirmed}

func Statuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled}
}

// ActiveStatuses returns the statuses of reservations still in flight.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed, StatusInProgress}
}

// HistoryStatuses returns the terminal statuses.
func HistoryStatuses() []string {
	return []string{StatusCompleted, StatusCancelled}
}

func IsValidStatus(status string) bool {
	_, ok := transitions[status]

	return ok
}

func IsTerminal(status string) bool {
	next, ok := transitions[status]

	return ok && len(next) == 0
}

// CanTransition reports whether the transition table permits current → requested,
// ignoring caller role.
func CanTransition(current, requested string) bool {
	return slices.Contains(transitions[current], requested)
}

// Check validates a requested transition for a caller. The caller's role and
// whether they own the reservation decide the outcome:
//
//   - a terminal current status always fails with an invalid-transition error
//   - a non-admin caller that does not own the reservation is rejected
//   - a client may only request cancellation, and only from pending or confirmed
//   - a queuer may request any table-legal transition on an owned reservation
//   - an admin may request any table-legal transition regardless of ownership
func Check(role string, owned bool, current, requested string) error {
	switch role {
	case constant.RoleClient, constant.RoleQueuer, constant.RoleAdmin:
	default:
		return failure.Forbidden("unknown caller role")
	}

	if role != constant.RoleAdmin && !owned {
		return failure.ForbiddenError
	}

	if IsTerminal(current) {
		return failure.InvalidTransition(current, requested)
	}

	if role == constant.RoleClient {
		if requested != StatusCancelled || !slices.Contains(clientCancellableFrom, current) {
			return failure.Forbidden("clients may only cancel pending or confirmed reservations")
		}
	}

	if !CanTransition(current, requested) {
		return failure.InvalidTransition(current, requested)
	}

	return nil
}
