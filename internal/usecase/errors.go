package usecase

// DomainError is a business-rule failure the client can act on
// (e.g. a referenced product does not exist upstream).
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

// TechnicalError is an infrastructure failure (sheet append, SMTP, CRM,
// document conversion). Surfaced at most once per request.
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

// ErrProductNotFound covers both "product does not exist" and "store
// unreachable" — the product API does not let us tell them apart.
var ErrProductNotFound = &DomainError{
	Code:    "PRODUCT_NOT_FOUND",
	Message: "product not found",
}
