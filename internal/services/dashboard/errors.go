package dashboard

import "log"

// StoreError is what every query returns when the store fails: a fixed
// message naming the operation. The underlying error is logged, never
// shown to the caller's user.
type StoreError struct {
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func wrapStore(message string, err error) error {
	log.Printf("Database Error: %v", err)
	return &StoreError{Message: message, Err: err}
}
