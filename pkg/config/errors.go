package config

import (
	"errors"
	"fmt"
)

// ErrMissingEnv marks a required environment variable that was absent at
// startup. Load fails fast on it rather than booting half-configured.
var ErrMissingEnv = errors.New("required environment variable not set")

// EnvError reports which environment variable a Load failure is about.
type EnvError struct {
	Var string // environment variable name, e.g. INTERNAL_CALLBACK_TOKEN
	Err error  // underlying cause
}

// Error returns the formatted error message.
func (e *EnvError) Error() string {
	return fmt.Sprintf("%s: %v", e.Var, e.Err)
}

// Unwrap returns the underlying error.
func (e *EnvError) Unwrap() error {
	return e.Err
}

// missingEnv builds the EnvError Validate returns for an unset required
// variable.
func missingEnv(name string) error {
	return &EnvError{Var: name, Err: ErrMissingEnv}
}
