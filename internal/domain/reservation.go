package domain

import (
	"time"

	"github.com/m04kA/RST-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID       int64
	Date     time.Time
	Time     types.TimeString
	Guests   int
	Name     string
	Email    string
	Phone    string

	Occasion         *string
	SpecialRequests  *string
	MarketingConsent bool

	Status ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// statusTransitions таблица допустимых переходов статусов
// pending -> confirmed | cancelled
// confirmed -> completed | cancelled
// completed, cancelled - терминальные
var statusTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
}

// IsActive returns true if the reservation counts against slot capacity
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.CanTransitionTo(StatusCancelled)
}

// CanTransitionTo returns true if the status state machine allows
// moving from the current status to the target one
func (r *Reservation) CanTransitionTo(target ReservationStatus) bool {
	for _, allowed := range statusTransitions[r.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ParseReservationStatus валидирует и конвертирует строку в ReservationStatus
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	status := ReservationStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return status, true
	default:
		return "", false
	}
}
