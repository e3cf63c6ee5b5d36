package domain

import (
	"errors"
	"time"
)

// Role classifies an employee's position.
type Role string

const (
	RoleManager   Role = "Manager"
	RoleDeveloper Role = "Developer"
	RoleDesigner  Role = "Designer"
	RoleHR        Role = "HR"
	RoleIntern    Role = "Intern"
	RoleOther     Role = "Other"
)

const DefaultDepartment = "General"

var roles = map[Role]struct{}{
	RoleManager:   {},
	RoleDeveloper: {},
	RoleDesigner:  {},
	RoleHR:        {},
	RoleIntern:    {},
	RoleOther:     {},
}

// IsValid reports whether the role is a member of the fixed enumeration.
func (r Role) IsValid() bool {
	_, ok := roles[r]
	return ok
}

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrEmployeeExists = errors.New("employee already exists")
var ErrInvalidRole = errors.New("invalid role")
var ErrNegativeSalary = errors.New("salary must be non-negative")
var ErrMissingFields = errors.New("missing required fields")

// Employee is the core record managed by the system.
type Employee struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Department  string    `json:"department"`
	Salary      float64   `json:"salary"`
	JoiningDate time.Time `json:"joining_date"`
}
