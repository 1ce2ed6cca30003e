package models

// UserType is the registration discriminator
type UserType string

const (
	UserTypeStudent    UserType = "student"
	UserTypeProfessor  UserType = "professor"
	UserTypeUniversity UserType = "university"
	UserTypeFaculty    UserType = "faculty"
	UserTypeDepartment UserType = "department"
	UserTypeCourse     UserType = "course"
)
