// Package identity carries the authenticated rider through request contexts.
//
// The rider id is attached by one of two HTTP middlewares: LINE for
// production, where riders sign in through LINE Login and present the ID
// token as a bearer token, and Header for local development, where the id
// is taken verbatim from the X-Rider-ID header.
//
// Back-office operators are identified separately by Staff, which only
// trusts a signed X-Staff-Token and never the rider's credentials.
package identity

import (
	"context"
	"fmt"

	"github.com/stopbook/backend/internal/domain"
)

type riderKey struct{}

// WithRiderID returns a copy of ctx carrying riderID.
func WithRiderID(ctx context.Context, riderID string) context.Context {
	return context.WithValue(ctx, riderKey{}, riderID)
}

// RiderID returns the rider attached to ctx, if any.
func RiderID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(riderKey{}).(string)
	return id, ok && id != ""
}

// EnsureLoggedIn returns the rider attached to ctx or
// domain.ErrIncompleteContext when nobody is signed in.
func EnsureLoggedIn(ctx context.Context) (string, error) {
	id, ok := RiderID(ctx)
	if !ok {
		return "", fmt.Errorf("%w: login required", domain.ErrIncompleteContext)
	}
	return id, nil
}
