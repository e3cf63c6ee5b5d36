package handler

import (
	"github.com/workforcehq/employee-records/internal/core/domain"
	"github.com/workforcehq/employee-records/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createEmployeeRequest) ports.CreateEmployeeInput {
	in := ports.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Role:       req.Role,
		Department: req.Department,
	}
	if req.Salary != nil {
		in.Salary = *req.Salary
	}
	if req.JoiningDate != nil {
		in.JoiningDate = *req.JoiningDate
	}
	return in
}

func toUpdateInput(req updateEmployeeRequest) ports.UpdateEmployeeInput {
	return ports.UpdateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Department:  req.Department,
		Salary:      req.Salary,
		JoiningDate: req.JoiningDate,
	}
}

// --- Domain → Response ---

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Role:        string(e.Role),
		Department:  e.Department,
		Salary:      e.Salary,
		JoiningDate: e.JoiningDate,
	}
}

func toEmployeeResponses(employees []*domain.Employee) []employeeResponse {
	out := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out
}
