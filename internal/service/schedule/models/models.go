package models

import (
	"time"

	"github.com/m04kA/RST-ReservationService/internal/domain"
)

// TimeSlotResponse HTTP-представление слота времени
type TimeSlotResponse struct {
	ID          int64  `json:"id"`
	Time        string `json:"time"` // HH:MM
	MaxCapacity int    `json:"maxCapacity"`
	IsLunch     bool   `json:"isLunch"`
	IsActive    bool   `json:"isActive"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// TimeSlotListResponse список слотов
type TimeSlotListResponse struct {
	Slots []*TimeSlotResponse `json:"slots"`
	Total int                 `json:"total"`
}

// CreateTimeSlotRequest запрос на создание слота
type CreateTimeSlotRequest struct {
	Time        string `json:"time"` // HH:MM
	MaxCapacity int    `json:"maxCapacity"`
	IsLunch     bool   `json:"isLunch"`
}

// UpdateTimeSlotRequest запрос на частичное обновление слота
// nil поля не изменяются
type UpdateTimeSlotRequest struct {
	IsActive    *bool `json:"isActive,omitempty"`
	MaxCapacity *int  `json:"maxCapacity,omitempty"`
}

// ClosedDateResponse HTTP-представление разового закрытия
type ClosedDateResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	CreatedAt string `json:"createdAt"`
}

// ClosedDateListResponse список разовых закрытий
type ClosedDateListResponse struct {
	Dates []*ClosedDateResponse `json:"dates"`
	Total int                   `json:"total"`
}

// AddClosedDateRequest запрос на закрытие даты
type AddClosedDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// RecurringClosureResponse HTTP-представление еженедельного закрытия
type RecurringClosureResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// RecurringClosureListResponse список еженедельных закрытий
type RecurringClosureListResponse struct {
	Closures []*RecurringClosureResponse `json:"closures"`
	Total    int                         `json:"total"`
}

// CreateRecurringClosureRequest запрос на создание еженедельного закрытия
type CreateRecurringClosureRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Active    *bool  `json:"active,omitempty"` // по умолчанию true
}

// UpdateRecurringClosureRequest запрос на частичное обновление закрытия
// nil поля не изменяются
type UpdateRecurringClosureRequest struct {
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// FromDomainTimeSlot конвертирует domain модель слота
func FromDomainTimeSlot(slot *domain.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:          slot.ID,
		Time:        slot.Time.String(),
		MaxCapacity: slot.MaxCapacity,
		IsLunch:     slot.IsLunch,
		IsActive:    slot.IsActive,
		CreatedAt:   slot.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   slot.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainTimeSlotList конвертирует список слотов
func FromDomainTimeSlotList(slots []*domain.TimeSlot) *TimeSlotListResponse {
	result := make([]*TimeSlotResponse, len(slots))
	for i, slot := range slots {
		result[i] = FromDomainTimeSlot(slot)
	}
	return &TimeSlotListResponse{Slots: result, Total: len(result)}
}

// FromDomainClosedDate конвертирует domain модель разового закрытия
func FromDomainClosedDate(cd *domain.ClosedDate) *ClosedDateResponse {
	return &ClosedDateResponse{
		ID:        cd.ID,
		Date:      cd.Date.Format(domain.DateFormat),
		CreatedAt: cd.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainClosedDateList конвертирует список разовых закрытий
func FromDomainClosedDateList(dates []*domain.ClosedDate) *ClosedDateListResponse {
	result := make([]*ClosedDateResponse, len(dates))
	for i, cd := range dates {
		result[i] = FromDomainClosedDate(cd)
	}
	return &ClosedDateListResponse{Dates: result, Total: len(result)}
}

// FromDomainRecurringClosure конвертирует domain модель еженедельного закрытия
func FromDomainRecurringClosure(rc *domain.RecurringClosure) *RecurringClosureResponse {
	return &RecurringClosureResponse{
		ID:        rc.ID,
		DayOfWeek: rc.DayOfWeek,
		StartTime: rc.StartTime.String(),
		EndTime:   rc.EndTime.String(),
		Active:    rc.Active,
		CreatedAt: rc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rc.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainRecurringClosureList конвертирует список еженедельных закрытий
func FromDomainRecurringClosureList(closures []*domain.RecurringClosure) *RecurringClosureListResponse {
	result := make([]*RecurringClosureResponse, len(closures))
	for i, rc := range closures {
		result[i] = FromDomainRecurringClosure(rc)
	}
	return &RecurringClosureListResponse{Closures: result, Total: len(result)}
}
