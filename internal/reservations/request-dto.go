package reservations

type CreateReservationRequest struct {
	SpotID     string  `json:"spot_id" binding:"required,uuid"`
	CustomerID string  `json:"customer_id" binding:"required,uuid"`
	CheckIn    string  `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string  `json:"check_out" binding:"required,datetime=2006-01-02"`
	Adults     int     `json:"adults" binding:"required,min=1"`
	Children   int     `json:"children" binding:"min=0"`
	TotalPrice float64 `json:"total_price" binding:"required,gt=0"`
}

type UpdateDatesRequest struct {
	CheckIn  string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" binding:"required,datetime=2006-01-02"`
}

type ReassignSpotRequest struct {
	SpotID string `json:"spot_id" binding:"required,uuid"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=CANCELLED EXPIRED"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

// UpdateReservationRequest is the full edit form. Price is recomputed from
// the selected spot and occupancy, never taken from the client.
type UpdateReservationRequest struct {
	SpotID     string `json:"spot_id" binding:"required,uuid"`
	CustomerID string `json:"customer_id" binding:"required,uuid"`
	CheckIn    string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" binding:"required,datetime=2006-01-02"`
	Adults     int    `json:"adults" binding:"required,min=1"`
	Children   int    `json:"children" binding:"min=0"`
	Status     string `json:"status" binding:"required,oneof=CONFIRMED HOLD"`
}

type ListFilters struct {
	Status string `form:"status"`
	Search string `form:"search"`
}
