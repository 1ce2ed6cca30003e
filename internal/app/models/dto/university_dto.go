package dto

// CreateReviewRequest attaches feedback to a university
type CreateReviewRequest struct {
	UniversityName string `json:"university_name" binding:"required" example:"Bogazici University"`
	Content        string `json:"content" binding:"required,max=1000" example:"Great campus"`
}

// CreateContactRequest attaches a contact point to a university
type CreateContactRequest struct {
	UniversityName string `json:"university_name" binding:"required" example:"Bogazici University"`
	Name           string `json:"name" binding:"required,max=100" example:"Registrar"`
	Email          string `json:"email" binding:"required,email,max=100" example:"registrar@example.edu"`
	PhoneNumber    string `json:"phone_number" binding:"required,max=20" example:"+90 212 000 0000"`
}
