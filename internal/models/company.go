package models

type Company struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Industry          string `json:"industry"`
	EmployeeCount     string `json:"employeeCount"`
	Website           string `json:"website"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	ZipCode           string `json:"zipCode"`
	Country           string `json:"country"`
	PrimaryContact    string `json:"primaryContact"`
	ComplianceOfficer string `json:"complianceOfficer"`
}
