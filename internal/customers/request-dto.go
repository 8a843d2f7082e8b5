package customers

type CreateCustomerRequest struct {
	FirstName string  `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string  `json:"last_name" binding:"required,min=1,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone" binding:"required,min=7,max=20"`
	City      *string `json:"city,omitempty" binding:"omitempty,max=100"`
	Province  *string `json:"province,omitempty" binding:"omitempty,max=100"`
}
