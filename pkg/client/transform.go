package client

import (
	"sort"
	"strings"
)

// Presentation transforms over the fetched employee list. The server returns
// records unordered; search, filtering, sorting, and pagination all happen
// here, on the consumer side.

// Search returns the employees whose name or email contains the query,
// case-insensitively. An empty query matches everything.
func Search(employees []Employee, query string) []Employee {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return employees
	}
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Email), query) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByRole returns the employees with the given role. The empty string
// and "all" match everything.
func FilterByRole(employees []Employee, role string) []Employee {
	if role == "" || strings.EqualFold(role, "all") {
		return employees
	}
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if e.Role == role {
			out = append(out, e)
		}
	}
	return out
}

// Sort options accepted by SortBy.
const (
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortSalaryAsc  = "salary-asc"
	SortSalaryDesc = "salary-desc"
)

// SortBy returns a sorted copy of the list. An unrecognised option leaves the
// order untouched.
func SortBy(employees []Employee, option string) []Employee {
	out := make([]Employee, len(employees))
	copy(out, employees)

	switch option {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name > out[j].Name })
	case SortSalaryAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Salary < out[j].Salary })
	case SortSalaryDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Salary > out[j].Salary })
	}
	return out
}

// Paginate returns the 1-based page of size perPage. Out-of-range pages yield
// an empty slice.
func Paginate(employees []Employee, page, perPage int) []Employee {
	if page < 1 || perPage < 1 {
		return []Employee{}
	}
	start := (page - 1) * perPage
	if start >= len(employees) {
		return []Employee{}
	}
	end := start + perPage
	if end > len(employees) {
		end = len(employees)
	}
	return employees[start:end]
}

// CountByRole aggregates the list into per-role headcounts, as charted on the
// dashboard.
func CountByRole(employees []Employee) map[string]int {
	counts := make(map[string]int)
	for _, e := range employees {
		counts[e.Role]++
	}
	return counts
}
