package handler

import "time"

type createEmployeeRequest struct {
	Name        string     `json:"name"         validate:"required"`
	Email       string     `json:"email"        validate:"required,email"`
	Role        string     `json:"role"         validate:"omitempty,oneof=Manager Developer Designer HR Intern Other"`
	Department  string     `json:"department"`
	Salary      *float64   `json:"salary"       validate:"required,gte=0"`
	JoiningDate *time.Time `json:"joining_date"`
}

// updateEmployeeRequest carries a partial update; absent fields leave the
// stored record untouched.
type updateEmployeeRequest struct {
	Name        *string    `json:"name"         validate:"omitempty,min=1"`
	Email       *string    `json:"email"        validate:"omitempty,email"`
	Role        *string    `json:"role"         validate:"omitempty,oneof=Manager Developer Designer HR Intern Other"`
	Department  *string    `json:"department"`
	Salary      *float64   `json:"salary"       validate:"omitempty,gte=0"`
	JoiningDate *time.Time `json:"joining_date"`
}

// employeeResponse is the transport view of an employee record, intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type employeeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	Salary      float64   `json:"salary"`
	JoiningDate time.Time `json:"joining_date"`
}
