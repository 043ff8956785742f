package employee

type EmployeeResponse struct {
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
	ProfilePhotoURL       *string `json:"profilePhotoUrl"`
	CreatedAt             string  `json:"createdAt"`
	UpdatedAt             string  `json:"updatedAt"`
}

type ListResponse struct {
	Items    []EmployeeResponse
	Total    int
	Page     int
	PerPage  int
	LastPage int
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                    e.ID,
		Name:                  e.Name,
		Gender:                e.Gender,
		MaritalStatus:         e.MaritalStatus,
		PhoneNo:               e.PhoneNo,
		Email:                 e.Email,
		Address:               e.Address,
		DateOfBirth:           e.DateOfBirth,
		Nationality:           e.Nationality,
		HireDate:              e.HireDate,
		Department:            e.Department,
		EmergencyContactName:  e.EmergencyContactName,
		EmergencyContactPhone: e.EmergencyContactPhone,
		JobTitle:              e.JobTitle,
		Salary:                e.Salary,
		ProfilePhoto:          e.ProfilePhoto,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
	if e.ProfilePhoto != nil {
		url := "/storage/" + *e.ProfilePhoto
		resp.ProfilePhotoURL = &url
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}
