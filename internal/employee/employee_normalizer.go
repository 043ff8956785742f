package employee

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PhotoUpload is a pending photo attachment extracted from a multipart
// request. The service resolves it into a stored path before persistence.
type PhotoUpload struct {
	Data        []byte
	Ext         string
	ContentType string
	Size        int64
}

// Payloads have accepted both snake_case and camelCase spellings for years;
// the normalizer resolves every alias group once so the rest of the codebase
// only sees canonical names. Precedence: snake_case key wins when both appear.
const (
	defaultGender        = "other"
	defaultMaritalStatus = "single"
	defaultNationality   = "american"
)

// newEmployee builds a canonical record from a loose create payload.
// Identity and timestamps are owned by the repository, not set here.
func newEmployee(input map[string]any) Employee {
	e := Employee{
		Name:                  resolveName(input, ""),
		Gender:                stringOr(input, "gender", defaultGender),
		MaritalStatus:         firstString(input, defaultMaritalStatus, "marital_status", "maritalStatus"),
		PhoneNo:               firstString(input, "", "phone", "phoneNo"),
		Email:                 stringOr(input, "email", ""),
		Address:               stringOr(input, "address", ""),
		DateOfBirth:           firstString(input, "", "date_of_birth", "dateOfBirth"),
		Nationality:           stringOr(input, "nationality", defaultNationality),
		HireDate:              firstString(input, "", "hire_date", "hireDate"),
		Department:            stringOr(input, "department", ""),
		EmergencyContactName:  firstString(input, "", "emergency_contact_name", "emergencyContactName"),
		EmergencyContactPhone: firstString(input, "", "emergency_contact_phone", "emergencyContactPhone"),
		JobTitle:              firstString(input, "", "position", "jobTitle"),
	}

	if v, ok := lookup(input, "salary"); ok {
		e.Salary, _ = coerceSalary(v)
	}
	if v, ok := photoValue(input); ok {
		e.ProfilePhoto = v
	}

	return e
}

// applyUpdate merges an update payload over an existing record. Only alias
// groups actually present in the payload touch the record; everything else
// keeps its prior value.
func applyUpdate(existing Employee, input map[string]any) Employee {
	e := existing

	if name, ok := resolveNameIfPresent(input); ok {
		e.Name = name
	}
	setIfPresent(input, &e.Gender, "gender")
	setIfPresent(input, &e.MaritalStatus, "marital_status", "maritalStatus")
	setIfPresent(input, &e.PhoneNo, "phone", "phoneNo")
	setIfPresent(input, &e.Email, "email")
	setIfPresent(input, &e.Address, "address")
	setIfPresent(input, &e.DateOfBirth, "date_of_birth", "dateOfBirth")
	setIfPresent(input, &e.Nationality, "nationality")
	setIfPresent(input, &e.HireDate, "hire_date", "hireDate")
	setIfPresent(input, &e.Department, "department")
	setIfPresent(input, &e.EmergencyContactName, "emergency_contact_name", "emergencyContactName")
	setIfPresent(input, &e.EmergencyContactPhone, "emergency_contact_phone", "emergencyContactPhone")
	setIfPresent(input, &e.JobTitle, "position", "jobTitle")

	if v, ok := lookup(input, "salary"); ok {
		if salary, valid := coerceSalary(v); valid {
			e.Salary = salary
		}
	}
	if v, ok := photoValue(input); ok {
		e.ProfilePhoto = v
	}

	return e
}

// resolveName combines first_name and last_name when both are supplied,
// otherwise falls back to a direct name value, otherwise to fallback.
func resolveName(input map[string]any, fallback string) string {
	first, hasFirst := stringValue(input, "first_name")
	last, hasLast := stringValue(input, "last_name")
	if hasFirst && hasLast {
		return strings.TrimSpace(first + " " + last)
	}
	if name, ok := stringValue(input, "name"); ok {
		return name
	}
	return fallback
}

// resolveNameIfPresent re-derives the name only when the payload carries a
// complete spelling: both name halves, or the name key itself. A lone
// first_name or last_name cannot produce a full name, so the stored value
// stands.
func resolveNameIfPresent(input map[string]any) (string, bool) {
	first, hasFirst := stringValue(input, "first_name")
	last, hasLast := stringValue(input, "last_name")
	if hasFirst && hasLast {
		return strings.TrimSpace(first + " " + last), true
	}
	if name, ok := stringValue(input, "name"); ok {
		return name, true
	}
	return "", false
}

// photoValue resolves the profile photo alias group to a stored path or nil.
// A pending *PhotoUpload must be resolved by the caller before this runs.
func photoValue(input map[string]any) (*string, bool) {
	v, ok := lookup(input, "profile_photo", "profilePhoto")
	if !ok {
		return nil, false
	}
	switch val := v.(type) {
	case nil:
		return nil, true
	case string:
		if val == "" {
			return nil, true
		}
		return &val, true
	case *string:
		return val, true
	default:
		return nil, false
	}
}

// pendingUpload extracts a not-yet-stored photo from the payload, if any.
func pendingUpload(input map[string]any) (*PhotoUpload, string, bool) {
	for _, key := range []string{"profile_photo", "profilePhoto"} {
		if v, ok := input[key]; ok {
			if upload, isUpload := v.(*PhotoUpload); isUpload && upload != nil {
				return upload, key, true
			}
		}
	}
	return nil, "", false
}

// coerceSalary accepts the numeric types JSON and form decoding produce.
func coerceSalary(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func lookup(input map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := input[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func stringValue(input map[string]any, key string) (string, bool) {
	v, ok := input[key]
	if !ok {
		return "", false
	}
	s, isString := v.(string)
	return s, isString
}

func stringOr(input map[string]any, key, fallback string) string {
	if s, ok := stringValue(input, key); ok && s != "" {
		return s
	}
	return fallback
}

func firstString(input map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if s, ok := stringValue(input, key); ok && s != "" {
			return s
		}
	}
	return fallback
}

func setIfPresent(input map[string]any, dst *string, keys ...string) {
	for _, key := range keys {
		if s, ok := stringValue(input, key); ok {
			*dst = s
			return
		}
	}
}
