package models

import "fmt"

// NotFoundError is returned when a point read matches no record.
type NotFoundError struct {
	EntityType string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s does not exist", e.EntityType, e.ID)
}

// ServiceFault is a structured failure reported by the record store server.
type ServiceFault struct {
	Operation  string
	EntityType string
	Code       int
	Err        error
}

func (e *ServiceFault) Error() string {
	return fmt.Sprintf("record store fault during %s of %s (code %d): %v", e.Operation, e.EntityType, e.Code, e.Err)
}

func (e *ServiceFault) Unwrap() error {
	return e.Err
}
