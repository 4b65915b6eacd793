package models

// Field rules live in the validate tags; label is the name used in operator
// messages. "length=N" means 1 to N characters.

type Customer struct {
	ID        int
	FirstName string `validate:"length=32" label:"Customer's first name"`
	LastName  string `validate:"length=32" label:"Customer's last name"`
	Phone     string `validate:"length=13" label:"Customer's phone number"`
	Address   string `validate:"length=256" label:"Customer's address"`
}

type Mechanic struct {
	ID              int
	FirstName       string `validate:"length=32" label:"Mechanic's first name"`
	LastName        string `validate:"length=32" label:"Mechanic's last name"`
	YearsExperience int
}

type Car struct {
	VIN   string `validate:"length=16" label:"Car's vin"`
	Make  string `validate:"length=32" label:"Car's make"`
	Model string `validate:"length=32" label:"Car's model"`
	Year  int
}

// ServiceRequestLookup holds what the operator types while locating the
// customer and car a service request is for.
type ServiceRequestLookup struct {
	LastName   string `validate:"length=32" label:"Customer's last name"`
	CustomerID int
	VIN        string `validate:"length=16" label:"Car's vin"`
}

// ClosedRequest is a billing record. ID and RequestID are always the same
// service request number.
type ClosedRequest struct {
	ID         int
	RequestID  int
	EmployeeID int
	Comment    string
	Bill       int
}

// ReportLimit is the K of the "K most serviced cars" report.
type ReportLimit struct {
	K int `validate:"gt=0" label:"Number"`
}
