package services

// ServiceError represents a typed error with an HTTP status code. Controllers
// map it straight to a JSON response.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}
