package dto

// MessageResponse is the body of creation endpoints that echo nothing but a message
type MessageResponse struct {
	Message string `json:"message" example:"Faculty registration successful"`
}

// CreatedResponse reports the id of a newly created row
type CreatedResponse struct {
	Message string `json:"message" example:"Review created successfully"`
	ID      int64  `json:"id" example:"1"`
}
