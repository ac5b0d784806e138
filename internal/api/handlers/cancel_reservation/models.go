package cancel_reservation

// CancelReservationResponse HTTP response model
type CancelReservationResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
