package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// HeaderStaffToken carries the back-office credential. It is separate from
// the rider's Authorization header so a rider token can never stand in for it.
const HeaderStaffToken = "X-Staff-Token"

// StaffIssuer and StaffAudience are the iss and aud claims every staff token
// must carry.
const (
	StaffIssuer   = "stopbook-staff"
	StaffAudience = "stopbook-backoffice"
)

type staffKey struct{}

// WithStaffID returns a copy of ctx carrying the back-office operator id.
func WithStaffID(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, staffKey{}, staffID)
}

// StaffID returns the operator attached to ctx, if any.
func StaffID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(staffKey{}).(string)
	return id, ok && id != ""
}

// IsStaff reports whether ctx was authenticated with a staff token.
func IsStaff(ctx context.Context) bool {
	_, ok := StaffID(ctx)
	return ok
}

// NewStaffValidator returns a validator for HS256 staff tokens signed with
// secret.
func NewStaffValidator(secret string) (*validator.Validator, error) {
	if secret == "" {
		return nil, fmt.Errorf("identity.NewStaffValidator: secret is required")
	}
	key := []byte(secret)
	v, err := validator.New(
		func(context.Context) (any, error) { return key, nil },
		validator.HS256,
		StaffIssuer,
		[]string{StaffAudience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("identity.NewStaffValidator: %w", err)
	}
	return v, nil
}

// Staff returns a middleware that authenticates the X-Staff-Token header
// with v and attaches the token subject as the staff id. Requests without
// the header pass through; an invalid token is rejected with 403.
//
// The rider's bearer token is never consulted here. Claims left in the
// context by LINE are ignored unless this middleware validated them.
func Staff(v TokenValidator, log *slog.Logger) func(http.Handler) http.Handler {
	jwt := jwtmiddleware.New(
		v.ValidateToken,
		jwtmiddleware.WithTokenExtractor(func(r *http.Request) (string, error) {
			return strings.TrimSpace(r.Header.Get(HeaderStaffToken)), nil
		}),
		jwtmiddleware.WithCredentialsOptional(true),
		jwtmiddleware.WithValidateOnOptions(false),
		jwtmiddleware.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			log.WarnContext(r.Context(), "rejected staff token", "error", err)
			writeForbidden(w, "invalid or expired staff token")
		}),
	)
	return func(next http.Handler) http.Handler {
		attach := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.TrimSpace(r.Header.Get(HeaderStaffToken)) != "" {
				if claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims); ok {
					if sub := claims.RegisteredClaims.Subject; sub != "" {
						r = r.WithContext(WithStaffID(r.Context(), sub))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
		return jwt.CheckJWT(attach)
	}
}

func writeForbidden(w http.ResponseWriter, message string) {
	var body errorBody
	body.Error.Code = "forbidden"
	body.Error.Message = message
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	_ = json.NewEncoder(w).Encode(body)
}
