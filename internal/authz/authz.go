// Package authz holds the stateless precondition checks that run before
// mutations: ownership, credential verification, and password-confirmation
// matching. Each predicate returns nil on pass or a sentinel error that the
// handlers translate into an HTTP status.
package authz

import (
	"errors"
	"fmt"

	"github.com/appdev-labs/photofeed/pkg/password"
)

var (
	// ErrUnauthenticated means no session where one is required.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the authenticated user may not act on the resource,
	// or a supplied credential did not verify.
	ErrForbidden = errors.New("forbidden")
	// ErrConfirmationMismatch means the two copies of a new password differ.
	ErrConfirmationMismatch = errors.New("new password confirmation mismatch")
)

// RequireAuthenticated rejects an empty request identity.
func RequireAuthenticated(logname string) error {
	if logname == "" {
		return ErrUnauthenticated
	}
	return nil
}

// RequireOwner rejects a mutation on a resource the user does not own.
func RequireOwner(logname, owner string) error {
	if logname != owner {
		return ErrForbidden
	}
	return nil
}

// VerifyCredential checks supplied against the stored credential string.
// A mismatch is ErrForbidden; a malformed stored credential propagates as a
// data-integrity fault.
func VerifyCredential(supplied, stored string) error {
	ok, err := password.Verify(supplied, stored)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// ConfirmNewPassword checks that both copies of a new password match.
func ConfirmNewPassword(new1, new2 string) error {
	if new1 != new2 {
		return ErrConfirmationMismatch
	}
	return nil
}
