package model

// BookingStatus is a closed enumeration of booking lifecycle states.
// Status changes are only legal along the transition graph below; the
// repository enforces this with compare-and-set updates so a booking can
// never move backward or leave a terminal state.
type BookingStatus string

const (
	StatusPending            BookingStatus = "PENDING"
	StatusConfirmed          BookingStatus = "CONFIRMED"
	StatusCompleted          BookingStatus = "COMPLETED"
	StatusCancelledByUser    BookingStatus = "CANCELLED_BY_USER"
	StatusCancelledByManager BookingStatus = "CANCELLED_BY_MANAGER"
)

var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelledByManager, StatusCancelledByUser},
	StatusConfirmed: {StatusCompleted, StatusCancelledByUser, StatusCancelledByManager},
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelledByUser, StatusCancelledByManager:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0 && s.IsValid()
}

// IsCancelled reports whether s is one of the two cancelled variants.
func (s BookingStatus) IsCancelled() bool {
	return s == StatusCancelledByUser || s == StatusCancelledByManager
}

// CanTransitionTo reports whether the lifecycle graph permits moving from s to next.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BlocksSlot reports whether a booking in status s occupies its time slot.
// Cancelled and completed bookings never block availability.
func (s BookingStatus) BlocksSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ActiveStatuses are the statuses that occupy a slot, in the order the
// repository filters on them.
func ActiveStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusConfirmed}
}
