package models

import "time"

// Student is a registered student account
type Student struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	PhoneNumber    *string   `json:"phone_number"`
	EnrollmentDate time.Time `json:"enrollment_date"`
}

// Professor is a registered professor account
type Professor struct {
	ID           int64   `json:"id"`
	FullName     string  `json:"full_name"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	PhoneNumber  *string `json:"phone_number"`
}
