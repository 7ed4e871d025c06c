package model

import "errors"

var (
	// ErrMissingCredential is returned when the webhook URL or bot token is not set
	ErrMissingCredential = errors.New("missing credential")

	// ErrMissingTag is returned when no release tag is given
	ErrMissingTag = errors.New("missing release tag")
)

// MissingEnvError reports a required environment variable that is not set
type MissingEnvError struct {
	Name string
	Kind error
}

func (e *MissingEnvError) Error() string {
	return e.Name + " environment variable not set"
}

func (e *MissingEnvError) Unwrap() error {
	return e.Kind
}
