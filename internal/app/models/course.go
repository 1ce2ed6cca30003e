package models

// Course belongs to a department. ProfessorID and Schedule are optional.
type Course struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	DepartmentID int64   `json:"department_id"`
	ProfessorID  *int64  `json:"professor_id,omitempty"`
	Schedule     *string `json:"schedule,omitempty"`
}

// Enrollment associates a student with a course. Duplicate pairs are allowed.
type Enrollment struct {
	ID        int64 `json:"id"`
	StudentID int64 `json:"student_id"`
	CourseID  int64 `json:"course_id"`
}
