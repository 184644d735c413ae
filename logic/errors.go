package logic

import "fmt"

// ValidationError - a malformed row in the input file; fatal, the run
// aborts before any remote call is made
type ValidationError struct {
	Row     int
	Login   string
	Columns int
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("row %d (%s): %s", e.Row, e.Login, e.Reason)
	}
	return fmt.Sprintf("row %d (%s) has %d columns, expected %d", e.Row, e.Login, e.Columns, RecordFieldCount)
}

// TransportError - the remote API could not be reached or answered with
// a non-success HTTP status; fatal, the whole run aborts
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected HTTP status %d, check your configuration and whether the cloud is reachable", e.Op, e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
