package employee

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"employee-manager/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

const maxPhotoBytes = 2 * 1024 * 1024

var (
	nonDigits    = regexp.MustCompile(`\D`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)

	allowedGenders         = []string{"male", "female", "other"}
	allowedMaritalStatuses = []string{"single", "married", "divorced", "widowed"}
	allowedDepartments     = []string{"hr", "engineering", "marketing", "sales", "finance", "operations"}
	allowedPhotoTypes      = []string{"jpeg", "png", "jpg", "gif"}
)

// Validator checks create and update payloads field by field and reports
// every failing rule, keyed by the spelling the client actually sent.
// The nationality list is injected so it stays configuration, not code.
type Validator struct {
	validate      *validator.Validate
	nationalities map[string]struct{}
}

func NewValidator(nationalities []string) *Validator {
	set := make(map[string]struct{}, len(nationalities))
	for _, n := range nationalities {
		set[strings.ToLower(n)] = struct{}{}
	}
	return &Validator{
		validate:      validator.New(),
		nationalities: set,
	}
}

// ValidateCreate checks a create payload: every field of the record is
// required except the photo and the optional extras.
func (v *Validator) ValidateCreate(input map[string]any) *apperror.ValidationError {
	return v.run(input, nil)
}

// ValidateUpdate checks an update payload with "sometimes" semantics: only
// fields present in the payload are validated, and the hire date cross-check
// resolves missing sides from the existing record.
func (v *Validator) ValidateUpdate(input map[string]any, existing *Employee) *apperror.ValidationError {
	return v.run(input, existing)
}

// run walks the rules in declaration order. existing == nil means create
// mode (all fields required); otherwise update mode.
func (v *Validator) run(input map[string]any, existing *Employee) *apperror.ValidationError {
	errs := apperror.NewValidationError()
	update := existing != nil

	v.checkName(errs, input, "first_name", "First name", update)
	v.checkName(errs, input, "last_name", "Last name", update)
	v.checkEmail(errs, input, update)
	v.checkPhone(errs, input, update)
	v.checkDepartment(errs, input, update)
	v.checkPosition(errs, input, update)
	v.checkSalary(errs, input, update)
	v.checkHireDate(errs, input, existing, update)
	v.checkDateOfBirth(errs, input, update)
	v.checkAddress(errs, input, update)
	v.checkPhoto(errs, input)
	v.checkEnum(errs, input, "Gender", allowedGenders, "gender")
	v.checkEnum(errs, input, "Marital status", allowedMaritalStatuses, "marital_status", "maritalStatus")
	v.checkNationality(errs, input)
	v.checkEmergencyPhone(errs, input)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (v *Validator) checkName(errs *apperror.ValidationError, input map[string]any, field, label string, update bool) {
	raw, present := input[field]
	if !present {
		if !update {
			errs.Add(field, label+" is required")
		}
		return
	}

	value, ok := raw.(string)
	if !ok {
		errs.Add(field, apperror.InvalidFieldMessage(field))
		return
	}
	if strings.TrimSpace(value) == "" {
		errs.Add(field, label+" is required")
		return
	}
	if len(value) > 100 {
		errs.Add(field, label+" must not exceed 100 characters")
	}
}

func (v *Validator) checkEmail(errs *apperror.ValidationError, input map[string]any, update bool) {
	raw, present := input["email"]
	if !present {
		if !update {
			errs.Add("email", "Email address is required")
		}
		return
	}

	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		errs.Add("email", "Email address is required")
		return
	}
	if err := v.validate.Var(value, "email"); err != nil {
		errs.Add("email", "Please provide a valid email address")
	}
	if len(value) > 255 {
		errs.Add("email", "Email address must not exceed 255 characters")
	}
}

func (v *Validator) checkPhone(errs *apperror.ValidationError, input map[string]any, update bool) {
	raw, present, field := lookupField(input, "phone", "phoneNo")
	if !present {
		if !update {
			errs.Add("phone", "Phone number is required")
		}
		return
	}

	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		errs.Add(field, "Phone number is required")
		return
	}
	if !validPhone(value) {
		errs.Add(field, "Phone number must be a valid phone number with 10-15 digits")
	}
}

func (v *Validator) checkDepartment(errs *apperror.ValidationError, input map[string]any, update bool) {
	raw, present := input["department"]
	if !present {
		if !update {
			errs.Add("department", "Department is required")
		}
		return
	}

	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		errs.Add("department", "Department is required")
		return
	}
	if !containsFold(allowedDepartments, value) {
		errs.Add("department", "Department must be one of: "+strings.Join(allowedDepartments, ", "))
	}
}

func (v *Validator) checkPosition(errs *apperror.ValidationError, input map[string]any, update bool) {
	raw, present, field := lookupField(input, "position", "jobTitle")
	if !present {
		if !update {
			errs.Add("position", "Position is required")
		}
		return
	}

	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		errs.Add(field, "Position is required")
		return
	}
	if len(value) > 255 {
		errs.Add(field, "Position must not exceed 255 characters")
	}
}

func (v *Validator) checkSalary(errs *apperror.ValidationError, input map[string]any, update bool) {
	raw, present := input["salary"]
	if !present {
		if !update {
			errs.Add("salary", "Salary is required")
		}
		return
	}

	salary, ok := coerceSalary(raw)
	if !ok {
		errs.Add("salary", "Salary must be a valid number")
		return
	}
	if salary < 0 {
		errs.Add("salary", "Salary must be greater than or equal to 0")
	}
}

func (v *Validator) checkHireDate(errs *apperror.ValidationError, input map[string]any, existing *Employee, update bool) {
	raw, present, field := lookupField(input, "hire_date", "hireDate")
	if !present {
		if !update {
			errs.Add("hire_date", "Hire date is required")
		}
		return
	}

	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		errs.Add(field, "Hire date is required")
		return
	}
	hireDate, err := parseDate(value)
	if err != nil {
		errs.Add(field, "Please provide a valid hire date")
		return
	}

	// The cross-field rule only runs when the comparison side is resolvable:
	// supplied in this payload or already on the record being updated.
	dob, resolvable := resolveDateOfBirth(input, existing)
	if !resolvable {
		return
	}
	if hireDate.Before(dob) {
		errs.Add(field, "Hire date must be after or equal to date of birth")
	}
}

func (v *Validator) checkDateOfBirth(errs *apperror.ValidationError, input map[string]any, update bool) {
	raw, present, field := lookupField(input, "date_of_birth", "dateOfBirth")
	if !present {
		if !update {
			errs.Add("date_of_birth", "Date of birth is required")
		}
		return
	}

	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		errs.Add(field, "Date of birth is required")
		return
	}
	dob, err := parseDate(value)
	if err != nil {
		errs.Add(field, "Please provide a valid date of birth")
		return
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !dob.Before(today) {
		errs.Add(field, "Date of birth must be before today")
	}
}

func (v *Validator) checkAddress(errs *apperror.ValidationError, input map[string]any, update bool) {
	raw, present := input["address"]
	if !present {
		if !update {
			errs.Add("address", "Address is required")
		}
		return
	}

	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		errs.Add("address", "Address is required")
		return
	}
	if len(value) > 500 {
		errs.Add("address", "Address must not exceed 500 characters")
	}
}

func (v *Validator) checkPhoto(errs *apperror.ValidationError, input map[string]any) {
	raw, present, field := lookupField(input, "profile_photo", "profilePhoto")
	if !present {
		return
	}

	switch value := raw.(type) {
	case nil, string, *string:
		// Already-stored path or explicit null, nothing to check.
	case *PhotoUpload:
		v.checkUpload(errs, field, value)
	default:
		errs.Add(field, "Profile photo must be an image file")
	}
}

// checkUpload enforces the photo rules on a pending multipart attachment.
func (v *Validator) checkUpload(errs *apperror.ValidationError, field string, upload *PhotoUpload) {
	if upload == nil {
		errs.Add(field, "Profile photo must be an image file")
		return
	}
	if !validPhotoType(upload) {
		errs.Add(field, "Profile photo must be a file of type: "+strings.Join(allowedPhotoTypes, ", "))
	}
	if upload.Size > maxPhotoBytes {
		errs.Add(field, "Profile photo must not exceed 2MB")
	}
}

func (v *Validator) checkEnum(errs *apperror.ValidationError, input map[string]any, label string, allowed []string, keys ...string) {
	raw, present, field := lookupField(input, keys...)
	if !present {
		return
	}
	value, ok := raw.(string)
	if !ok {
		errs.Add(field, apperror.InvalidFieldMessage(field))
		return
	}
	if value == "" {
		return
	}
	if !containsFold(allowed, value) {
		errs.Add(field, fmt.Sprintf("%s must be one of: %s", label, strings.Join(allowed, ", ")))
	}
}

func (v *Validator) checkNationality(errs *apperror.ValidationError, input map[string]any) {
	raw, present := input["nationality"]
	if !present {
		return
	}
	value, ok := raw.(string)
	if !ok {
		errs.Add("nationality", apperror.InvalidFieldMessage("nationality"))
		return
	}
	if value == "" {
		return
	}
	if _, known := v.nationalities[strings.ToLower(value)]; !known {
		errs.Add("nationality", "Nationality must be a valid nationality")
	}
}

func (v *Validator) checkEmergencyPhone(errs *apperror.ValidationError, input map[string]any) {
	raw, present, field := lookupField(input, "emergency_contact_phone", "emergencyContactPhone")
	if !present {
		return
	}
	value, ok := raw.(string)
	if !ok {
		errs.Add(field, apperror.InvalidFieldMessage(field))
		return
	}
	if value == "" {
		return
	}
	if !validPhone(value) {
		errs.Add(field, "Emergency contact phone must be a valid phone number with 10-15 digits")
	}
}

// validPhone strips every non-digit character and requires 10-15 digits.
func validPhone(value string) bool {
	cleaned := nonDigits.ReplaceAllString(value, "")
	return phonePattern.MatchString(cleaned)
}

func validPhotoType(upload *PhotoUpload) bool {
	subtype := strings.ToLower(strings.TrimPrefix(upload.ContentType, "image/"))
	if subtype == upload.ContentType {
		// Content type did not carry an image/ prefix, fall back to the
		// file extension.
		subtype = strings.ToLower(strings.TrimPrefix(upload.Ext, "."))
	}
	for _, allowed := range allowedPhotoTypes {
		if subtype == allowed {
			return true
		}
	}
	return false
}

// parseDate accepts YYYY-MM-DD or RFC3339.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Parse(time.RFC3339, value)
}

// resolveDateOfBirth finds the comparison date for the hire date rule, from
// the payload first and the existing record second.
func resolveDateOfBirth(input map[string]any, existing *Employee) (time.Time, bool) {
	if raw, present, _ := lookupField(input, "date_of_birth", "dateOfBirth"); present {
		if value, ok := raw.(string); ok && strings.TrimSpace(value) != "" {
			if dob, err := parseDate(value); err == nil {
				return dob, true
			}
			return time.Time{}, false
		}
	}
	if existing != nil && existing.DateOfBirth != "" {
		if dob, err := parseDate(existing.DateOfBirth); err == nil {
			return dob, true
		}
	}
	return time.Time{}, false
}

func containsFold(allowed []string, value string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, value) {
			return true
		}
	}
	return false
}

// lookupField returns the first present alias and which spelling the client
// used, so error messages land on the key they sent.
func lookupField(input map[string]any, keys ...string) (any, bool, string) {
	for _, key := range keys {
		if v, ok := input[key]; ok {
			return v, true, key
		}
	}
	if len(keys) > 0 {
		return nil, false, keys[0]
	}
	return nil, false, ""
}
