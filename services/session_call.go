package services

import (
	stderrors "errors"
	"fmt"
	"smartshop/auth"
	"smartshop/errors"
)

// withToken runs fn with the session token. A 401 answer expires the session
// and comes back as errors.ErrSessionExpired, still wrapping the backend error text.
func withToken[T any](session *auth.Session, fn func(token string) (T, error)) (T, error) {
	var zero T
	token, err := session.Token()
	if err != nil {
		return zero, err
	}
	value, err := fn(token)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnauthorized) {
			session.Expire()
			return zero, fmt.Errorf("%w: %v", errors.ErrSessionExpired, err)
		}
		return zero, err
	}
	return value, nil
}

// withTokenErr is withToken for calls that answer nothing.
func withTokenErr(session *auth.Session, fn func(token string) error) error {
	_, err := withToken(session, func(token string) (struct{}, error) {
		return struct{}{}, fn(token)
	})
	return err
}
