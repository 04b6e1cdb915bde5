package middleware

import "errors"

var errUnknownRole = errors.New("token carries an unknown role")

// resolveError marks failures looking up the seller profile, which are
// server errors rather than bad credentials.
type resolveError struct {
	err error
}

func (e *resolveError) Error() string {
	return "resolve seller profile: " + e.err.Error()
}

func (e *resolveError) Unwrap() error {
	return e.err
}
