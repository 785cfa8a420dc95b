package usecase

// DomainError is an expected outcome the client caused and can act on.
// Handlers map Code to an HTTP status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is a server-side failure whose message is still safe to
// surface (misconfiguration, not internals).
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

var (
	ErrCredentialsRequired = &DomainError{Code: "credentials_required", Message: "Email and password are required"}
	ErrInvalidCredentials  = &DomainError{Code: "invalid_credentials", Message: "Invalid credentials"}
	ErrEmailTaken          = &DomainError{Code: "email_taken", Message: "User already exists"}
	ErrLeadNotFound        = &DomainError{Code: "lead_not_found", Message: "Lead not found"}

	ErrAdminNotConfigured = &TechnicalError{Code: "admin_not_configured", Message: "Admin credentials are not configured"}
)
