package models

import "time"

// RegistrationStatus represents the state of a signup request. Approved and
// Rejected are terminal.
type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "Pending"
	RegistrationStatusApproved RegistrationStatus = "Approved"
	RegistrationStatusRejected RegistrationStatus = "Rejected"
)

// ConsumerDetails is the consumer-specific payload attached to a
// registration request.
type ConsumerDetails struct {
	MonthlySpend    float64 `json:"monthlySpend,omitempty"`
	InvoiceFileName string  `json:"invoiceFileName,omitempty"`
	Location        string  `json:"location,omitempty"`
}

// RegistrationRequest is a pending signup or invite. Approval creates a User,
// and a Customer as well when the requested role is CONSUMER.
type RegistrationRequest struct {
	ID           string             `json:"id"`
	Role         UserRole           `json:"role"`
	BusinessName string             `json:"businessName"`
	ContactName  string             `json:"contactName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Status       RegistrationStatus `json:"status"`
	Consumer     *ConsumerDetails   `json:"consumer,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	DecidedAt    *time.Time         `json:"decidedAt,omitempty"`
}

// FormFieldType enumerates the input kinds a registration form can render
type FormFieldType string

const (
	FormFieldText   FormFieldType = "text"
	FormFieldNumber FormFieldType = "number"
	FormFieldSelect FormFieldType = "select"
	FormFieldFile   FormFieldType = "file"
)

// FormField is one input of a registration form template
type FormField struct {
	Name     string        `json:"name"`
	Label    string        `json:"label"`
	Type     FormFieldType `json:"type"`
	Required bool          `json:"required"`
	Options  []string      `json:"options,omitempty"`
}

// FormTemplate describes the signup form for one role
type FormTemplate struct {
	Role   UserRole    `json:"role"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields"`
}
