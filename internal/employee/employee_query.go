package employee

import (
	"sort"
	"strings"
)

const DefaultPerPage = 10

type QueryParams struct {
	Search        string
	Department    string
	SortBy        string
	SortDirection string // "asc" or "desc", default asc
	Page          int
	PerPage       int
}

type QueryResult struct {
	Items    []Employee
	Total    int
	Page     int
	PerPage  int
	LastPage int
}

// Query produces the filtered, sorted page of active employees. The search
// substring matches name, department or email (case-insensitive); the
// department filter is an exact case-insensitive match. Total counts the
// filtered set before pagination.
func Query(all []Employee, params QueryParams) QueryResult {
	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := params.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	filtered := make([]Employee, 0, len(all))
	for _, e := range all {
		if e.IsDeleted() {
			continue
		}
		filtered = append(filtered, e)
	}

	if search := strings.ToLower(strings.TrimSpace(params.Search)); search != "" {
		matched := filtered[:0]
		for _, e := range filtered {
			if strings.Contains(strings.ToLower(e.Name), search) ||
				strings.Contains(strings.ToLower(e.Department), search) ||
				strings.Contains(strings.ToLower(e.Email), search) {
				matched = append(matched, e)
			}
		}
		filtered = matched
	}

	if department := strings.TrimSpace(params.Department); department != "" {
		matched := filtered[:0]
		for _, e := range filtered {
			if strings.EqualFold(e.Department, department) {
				matched = append(matched, e)
			}
		}
		filtered = matched
	}

	if sortBy := strings.TrimSpace(params.SortBy); sortBy != "" {
		desc := strings.EqualFold(params.SortDirection, "desc")
		sort.SliceStable(filtered, func(i, j int) bool {
			cmp, known := compareBy(filtered[i], filtered[j], sortBy)
			if !known || cmp == 0 {
				return false
			}
			if desc {
				return cmp > 0
			}
			return cmp < 0
		})
	}

	total := len(filtered)
	lastPage := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return QueryResult{
		Items:    filtered[start:end],
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage,
	}
}

// compareBy orders two records by a field's natural ordering: numeric for
// salary, lexicographic for strings. Unknown fields report not-known so the
// stable sort keeps the prior order.
func compareBy(a, b Employee, field string) (int, bool) {
	if field == "salary" {
		switch {
		case a.Salary < b.Salary:
			return -1, true
		case a.Salary > b.Salary:
			return 1, true
		default:
			return 0, true
		}
	}

	av, aok := stringField(a, field)
	bv, bok := stringField(b, field)
	if !aok || !bok {
		return 0, false
	}
	return strings.Compare(strings.ToLower(av), strings.ToLower(bv)), true
}

func stringField(e Employee, field string) (string, bool) {
	switch field {
	case "name":
		return e.Name, true
	case "gender":
		return e.Gender, true
	case "maritalStatus", "marital_status":
		return e.MaritalStatus, true
	case "phoneNo", "phone":
		return e.PhoneNo, true
	case "email":
		return e.Email, true
	case "address":
		return e.Address, true
	case "dateOfBirth", "date_of_birth":
		return e.DateOfBirth, true
	case "nationality":
		return e.Nationality, true
	case "hireDate", "hire_date":
		return e.HireDate, true
	case "department":
		return e.Department, true
	case "jobTitle", "position":
		return e.JobTitle, true
	case "createdAt", "created_at":
		return e.CreatedAt, true
	case "updatedAt", "updated_at":
		return e.UpdatedAt, true
	default:
		return "", false
	}
}
