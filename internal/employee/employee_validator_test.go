package employee_test

import (
	"strings"
	"testing"

	"employee-manager/internal/employee"
	"employee-manager/internal/lookup"

	"github.com/stretchr/testify/assert"
)

func newTestValidator() *employee.Validator {
	return employee.NewValidator(lookup.DefaultOptions().Nationalities)
}

func validCreatePayload() map[string]any {
	return map[string]any{
		"first_name":    "John",
		"last_name":     "Doe",
		"email":         "john.doe@example.com",
		"phone":         "(555) 123-4567",
		"department":    "engineering",
		"position":      "Software Engineer",
		"salary":        75000.0,
		"hire_date":     "2020-01-15",
		"date_of_birth": "1990-06-01",
		"address":       "123 Main St, Springfield",
	}
}

func TestValidator_Create(t *testing.T) {
	v := newTestValidator()

	t.Run("valid payload passes", func(t *testing.T) {
		errs := v.ValidateCreate(validCreatePayload())
		assert.Nil(t, errs)
	})

	t.Run("empty payload reports every required field", func(t *testing.T) {
		errs := v.ValidateCreate(map[string]any{})

		assert.NotNil(t, errs)
		for _, field := range []string{
			"first_name", "last_name", "email", "phone", "department",
			"position", "salary", "hire_date", "date_of_birth", "address",
		} {
			assert.Contains(t, errs.Errors, field, "expected error for %s", field)
		}
	})

	t.Run("all failing rules reported, not fail-fast", func(t *testing.T) {
		payload := validCreatePayload()
		payload["email"] = "not-an-email"
		payload["department"] = "astrology"
		payload["salary"] = "lots"

		errs := v.ValidateCreate(payload)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["email"], "Please provide a valid email address")
		assert.Contains(t, errs.Errors["department"][0], "Department must be one of")
		assert.Contains(t, errs.Errors["salary"], "Salary must be a valid number")
	})

	t.Run("first name over 100 characters", func(t *testing.T) {
		payload := validCreatePayload()
		payload["first_name"] = strings.Repeat("a", 101)

		errs := v.ValidateCreate(payload)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["first_name"], "First name must not exceed 100 characters")
	})

	t.Run("phone with too few digits", func(t *testing.T) {
		payload := validCreatePayload()
		payload["phone"] = "12345"

		errs := v.ValidateCreate(payload)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["phone"][0], "10-15 digits")
	})

	t.Run("phone formatting characters are stripped", func(t *testing.T) {
		payload := validCreatePayload()
		payload["phone"] = "+1 (555) 123-45-67"

		errs := v.ValidateCreate(payload)
		assert.Nil(t, errs)
	})

	t.Run("salary supplied as string is coerced", func(t *testing.T) {
		payload := validCreatePayload()
		payload["salary"] = "68000"

		errs := v.ValidateCreate(payload)
		assert.Nil(t, errs)
	})

	t.Run("negative salary rejected", func(t *testing.T) {
		payload := validCreatePayload()
		payload["salary"] = -1.0

		errs := v.ValidateCreate(payload)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["salary"], "Salary must be greater than or equal to 0")
	})

	t.Run("date of birth in the future rejected", func(t *testing.T) {
		payload := validCreatePayload()
		payload["date_of_birth"] = "2999-01-01"
		payload["hire_date"] = "2999-06-01"

		errs := v.ValidateCreate(payload)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["date_of_birth"], "Date of birth must be before today")
	})

	t.Run("hire date before date of birth rejected", func(t *testing.T) {
		payload := validCreatePayload()
		payload["date_of_birth"] = "2023-01-01"
		payload["hire_date"] = "1990-01-01"

		errs := v.ValidateCreate(payload)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["hire_date"], "Hire date must be after or equal to date of birth")

		// Reversing the dates succeeds.
		payload["date_of_birth"] = "1990-01-01"
		payload["hire_date"] = "2023-01-01"
		assert.Nil(t, v.ValidateCreate(payload))
	})

	t.Run("hire date equal to date of birth accepted", func(t *testing.T) {
		payload := validCreatePayload()
		payload["date_of_birth"] = "1990-01-01"
		payload["hire_date"] = "1990-01-01"

		assert.Nil(t, v.ValidateCreate(payload))
	})

	t.Run("unknown nationality rejected", func(t *testing.T) {
		payload := validCreatePayload()
		payload["nationality"] = "martian"

		errs := v.ValidateCreate(payload)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["nationality"], "Nationality must be a valid nationality")
	})

	t.Run("emergency contact phone validated when present", func(t *testing.T) {
		payload := validCreatePayload()
		payload["emergencyContactPhone"] = "123"

		errs := v.ValidateCreate(payload)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["emergencyContactPhone"][0], "10-15 digits")
	})
}

func TestValidator_Update(t *testing.T) {
	v := newTestValidator()
	existing := &employee.Employee{
		ID:          "emp-1",
		Name:        "John Doe",
		DateOfBirth: "1990-06-01",
		HireDate:    "2020-01-15",
	}

	t.Run("empty payload passes, nothing required", func(t *testing.T) {
		assert.Nil(t, v.ValidateUpdate(map[string]any{}, existing))
	})

	t.Run("only supplied fields validated", func(t *testing.T) {
		errs := v.ValidateUpdate(map[string]any{"email": "bad"}, existing)

		assert.NotNil(t, errs)
		assert.Len(t, errs.Fields, 1)
		assert.Contains(t, errs.Errors, "email")
	})

	t.Run("supplied but empty field fails required rule", func(t *testing.T) {
		errs := v.ValidateUpdate(map[string]any{"first_name": "  "}, existing)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["first_name"], "First name is required")
	})

	t.Run("hire date checked against date of birth on record", func(t *testing.T) {
		errs := v.ValidateUpdate(map[string]any{"hire_date": "1980-01-01"}, existing)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["hire_date"], "Hire date must be after or equal to date of birth")
	})

	t.Run("cross-field rule skipped when no date of birth resolvable", func(t *testing.T) {
		noDOB := &employee.Employee{ID: "emp-2"}
		assert.Nil(t, v.ValidateUpdate(map[string]any{"hire_date": "1980-01-01"}, noDOB))
	})

	t.Run("camelCase aliases validated under the supplied key", func(t *testing.T) {
		errs := v.ValidateUpdate(map[string]any{"hireDate": "not-a-date"}, existing)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["hireDate"], "Please provide a valid hire date")
	})

	t.Run("oversized photo rejected", func(t *testing.T) {
		upload := &employee.PhotoUpload{
			Data:        []byte("x"),
			Ext:         "jpg",
			ContentType: "image/jpeg",
			Size:        3 * 1024 * 1024,
		}
		errs := v.ValidateUpdate(map[string]any{"profile_photo": upload}, existing)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["profile_photo"], "Profile photo must not exceed 2MB")
	})

	t.Run("non-image photo content type rejected", func(t *testing.T) {
		upload := &employee.PhotoUpload{
			Data:        []byte("%PDF-1.7"),
			Ext:         "pdf",
			ContentType: "application/pdf",
			Size:        1024,
		}
		errs := v.ValidateUpdate(map[string]any{"profilePhoto": upload}, existing)

		assert.NotNil(t, errs)
		assert.Contains(t, errs.Errors["profilePhoto"][0], "jpeg, png, jpg, gif")
	})

	t.Run("stored path and explicit null pass photo rules", func(t *testing.T) {
		assert.Nil(t, v.ValidateUpdate(map[string]any{"profile_photo": "avatars/abc.jpg"}, existing))
		assert.Nil(t, v.ValidateUpdate(map[string]any{"profile_photo": nil}, existing))
	})
}
