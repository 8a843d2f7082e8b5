package spots

// CreateSpotRequest is the payload for creating a spot.
type CreateSpotRequest struct {
	Number  int    `json:"number" binding:"required,min=1"`
	Service string `json:"service" binding:"required"`
	Status  string `json:"status" binding:"required"`

	Longueur *float64 `json:"longueur" binding:"omitempty,min=0"`
	Largeur  *float64 `json:"largeur" binding:"omitempty,min=0"`
	Soleil   *int     `json:"soleil" binding:"omitempty,min=0,max=100"`

	MotoriseRange   *VehicleLengthRange `json:"motorise_range"`
	FifthwheelRange *VehicleLengthRange `json:"fifthwheel_range"`
	RoulotteRange   *VehicleLengthRange `json:"roulotte_range"`

	CampeurPorte  bool `json:"campeur_porte"`
	TenteRoulotte bool `json:"tente_roulotte"`
	Tente         bool `json:"tente"`

	Sol           *string `json:"sol"`
	Particularite *string `json:"particularite"`
	PricePerNight float64 `json:"price_per_night" binding:"min=0"`
	IsActive      *bool   `json:"is_active"`
}

// UpdateSpotRequest is a partial update; nil fields are left untouched.
type UpdateSpotRequest struct {
	Number  *int    `json:"number" binding:"omitempty,min=1"`
	Service *string `json:"service"`
	Status  *string `json:"status"`

	Longueur *float64 `json:"longueur" binding:"omitempty,min=0"`
	Largeur  *float64 `json:"largeur" binding:"omitempty,min=0"`
	Soleil   *int     `json:"soleil" binding:"omitempty,min=0,max=100"`

	MotoriseRange   *VehicleLengthRange `json:"motorise_range"`
	FifthwheelRange *VehicleLengthRange `json:"fifthwheel_range"`
	RoulotteRange   *VehicleLengthRange `json:"roulotte_range"`

	CampeurPorte  *bool `json:"campeur_porte"`
	TenteRoulotte *bool `json:"tente_roulotte"`
	Tente         *bool `json:"tente"`

	Sol           *string  `json:"sol"`
	Particularite *string  `json:"particularite"`
	PricePerNight *float64 `json:"price_per_night" binding:"omitempty,min=0"`
}

// Filters are the query parameters accepted by the list endpoint.
type Filters struct {
	Search        string   `form:"search"`
	Service       string   `form:"service"`
	Status        string   `form:"status"`
	VehicleType   string   `form:"vehicleType"`
	VehicleLength *float64 `form:"vehicleLength"`
	Sol           string   `form:"sol"`
	// SearchableOnly restricts to spots bookable from the reservation
	// form: active with REGULAR status.
	SearchableOnly bool `form:"searchableOnly"`
}
