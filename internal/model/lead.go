package model

// Lead represents a contact-form submission bound for one of the
// configured lead sinks. Nothing is persisted locally; the struct is the
// wire shape for both the leads table insert and the spreadsheet webhook.
type Lead struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	// Page identifies the page the form was submitted from.
	Page string `json:"page"`
	// Timestamp is set by the sheets sink only; the table insert relies on
	// the database default.
	Timestamp string `json:"timestamp,omitempty"`
}
