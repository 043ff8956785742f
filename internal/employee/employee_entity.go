package employee

// Employee is the canonical record shape. Dates and timestamps are kept as
// ISO strings so the backing JSON document round-trips byte-for-byte with
// what historical clients wrote.
type Employee struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Gender                string  `json:"gender"`
	MaritalStatus         string  `json:"maritalStatus"`
	PhoneNo               string  `json:"phoneNo"`
	Email                 string  `json:"email"`
	Address               string  `json:"address"`
	DateOfBirth           string  `json:"dateOfBirth"`
	Nationality           string  `json:"nationality"`
	HireDate              string  `json:"hireDate"`
	Department            string  `json:"department"`
	EmergencyContactName  string  `json:"emergencyContactName"`
	EmergencyContactPhone string  `json:"emergencyContactPhone"`
	JobTitle              string  `json:"jobTitle"`
	Salary                float64 `json:"salary"`
	ProfilePhoto          *string `json:"profilePhoto"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
	DeletedAt             *string `json:"deletedAt"`
}

func (e Employee) IsDeleted() bool {
	return e.DeletedAt != nil
}
