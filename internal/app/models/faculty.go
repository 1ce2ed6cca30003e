package models

// Faculty belongs to exactly one university
type Faculty struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	UniversityID int64  `json:"university_id"`
}
