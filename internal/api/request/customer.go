package request

type RegisterCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Tickets int    `json:"tickets" binding:"required,min=1"`
}
