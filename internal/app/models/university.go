package models

import "time"

// University is the root of the faculty → department → course hierarchy
type University struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is free-text feedback attached to a university
type Review struct {
	ID           int64     `json:"id"`
	UniversityID int64     `json:"university_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

// Contact is a named contact point of a university
type Contact struct {
	ID           int64     `json:"id"`
	UniversityID int64     `json:"university_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
}
