package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workforcehq/employee-records/internal/api/metrics"
	"github.com/workforcehq/employee-records/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee record operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /api/employees.
//
// @Summary      Create a new employee record
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.WithLabelValues(string(created.Role)).Inc()

	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// List handles GET /api/employees. Ordering, filtering, and pagination are a
// client-side concern.
//
// @Summary      List all employee records
// @Tags         employees
// @Produce      json
// @Success      200  {array}   employeeResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(employees))
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee record by id
// @Tags         employees
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Update handles PUT /api/employees/:id with a partial or full field set.
//
// @Summary      Update an employee record
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Employee id"
// @Param        body  body      updateEmployeeRequest  true  "Fields to update"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	metrics.EmployeesUpdatedTotal.Inc()

	return c.JSON(http.StatusOK, toEmployeeResponse(updated))
}

// Delete handles DELETE /api/employees/:id. Deleting an id twice yields the
// same not-found error, never a crash.
//
// @Summary      Delete an employee record
// @Tags         employees
// @Param        id  path  string  true  "Employee id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EmployeesDeletedTotal.Inc()

	return c.NoContent(http.StatusNoContent)
}
