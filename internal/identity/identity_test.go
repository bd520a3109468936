package identity_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stopbook/backend/internal/domain"
	"github.com/stopbook/backend/internal/identity"
)

func TestEnsureLoggedIn(t *testing.T) {
	_, err := identity.EnsureLoggedIn(context.Background())
	assert.ErrorIs(t, err, domain.ErrIncompleteContext)

	_, err = identity.EnsureLoggedIn(identity.WithRiderID(context.Background(), ""))
	assert.ErrorIs(t, err, domain.ErrIncompleteContext, "empty id is not a login")

	id, err := identity.EnsureLoggedIn(identity.WithRiderID(context.Background(), "U42"))
	require.NoError(t, err)
	assert.Equal(t, "U42", id)
}

// mockValidator is a hand-written test double for identity.TokenValidator.
type mockValidator struct {
	validate func(ctx context.Context, token string) (any, error)
}

func (m *mockValidator) ValidateToken(ctx context.Context, token string) (any, error) {
	return m.validate(ctx, token)
}

var _ identity.TokenValidator = (*mockValidator)(nil)

// echoRider writes the rider id found in the request context, or "-".
var echoRider = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.RiderID(r.Context())
	if !ok {
		id = "-"
	}
	_, _ = io.WriteString(w, id)
})

func lineMiddleware() http.Handler {
	v := &mockValidator{validate: func(_ context.Context, token string) (any, error) {
		if token != "good" {
			return nil, errors.New("signature mismatch")
		}
		return &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: "U1234", Issuer: identity.LINEIssuer},
		}, nil
	}}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return identity.LINE(v, log)(echoRider)
}

func TestLINE_ValidTokenAttachesSubject(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	lineMiddleware().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "U1234", rec.Body.String())
}

func TestLINE_MissingTokenIsAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/regions", nil)
	rec := httptest.NewRecorder()

	lineMiddleware().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "-", rec.Body.String())
}

func TestLINE_InvalidTokenIsRejected(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()

	lineMiddleware().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"login_required","message":"invalid or expired token"}}`, rec.Body.String())
}

func TestHeader(t *testing.T) {
	h := identity.Header()(echoRider)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(identity.HeaderRiderID, " dev-rider ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "dev-rider", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "-", rec.Body.String())
}

func TestNewLINEValidator_RequiresCredentials(t *testing.T) {
	_, err := identity.NewLINEValidator("", "secret")
	assert.Error(t, err)

	v, err := identity.NewLINEValidator("1650000000", "secret")
	require.NoError(t, err)
	_, err = v.ValidateToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

// echoCaller writes "<rider>|<staff>" from the request context, "-" for
// either when absent.
var echoCaller = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	rider, ok := identity.RiderID(r.Context())
	if !ok {
		rider = "-"
	}
	staff, ok := identity.StaffID(r.Context())
	if !ok {
		staff = "-"
	}
	_, _ = io.WriteString(w, rider+"|"+staff)
})

func staffValidator() *mockValidator {
	return &mockValidator{validate: func(_ context.Context, token string) (any, error) {
		if token != "ops-token" {
			return nil, errors.New("signature mismatch")
		}
		return &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: "ops-7", Issuer: identity.StaffIssuer},
		}, nil
	}}
}

// riderAndStaff chains the LINE and staff middlewares as serve does.
func riderAndStaff() http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	lineV := &mockValidator{validate: func(_ context.Context, token string) (any, error) {
		if token != "good" {
			return nil, errors.New("signature mismatch")
		}
		return &validator.ValidatedClaims{
			RegisteredClaims: validator.RegisteredClaims{Subject: "U1234", Issuer: identity.LINEIssuer},
		}, nil
	}}
	return identity.LINE(lineV, log)(identity.Staff(staffValidator(), log)(echoCaller))
}

func TestStaff_ValidTokenAttachesSubject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/staff/reservations/x/acknowledge", nil)
	req.Header.Set(identity.HeaderStaffToken, "ops-token")
	rec := httptest.NewRecorder()

	riderAndStaff().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "-|ops-7", rec.Body.String())
}

func TestStaff_RiderBearerTokenIsNotStaff(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/staff/reservations/x/acknowledge", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	riderAndStaff().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "U1234|-", rec.Body.String())
}

func TestStaff_InvalidTokenIsForbidden(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/staff/reservations/x/acknowledge", nil)
	req.Header.Set(identity.HeaderStaffToken, "forged")
	rec := httptest.NewRecorder()

	riderAndStaff().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":{"code":"forbidden","message":"invalid or expired staff token"}}`, rec.Body.String())
}

func TestIsStaff(t *testing.T) {
	assert.False(t, identity.IsStaff(context.Background()))
	assert.False(t, identity.IsStaff(identity.WithStaffID(context.Background(), "")))
	assert.True(t, identity.IsStaff(identity.WithStaffID(context.Background(), "ops-7")))
}

func TestNewStaffValidator_RequiresSecret(t *testing.T) {
	_, err := identity.NewStaffValidator("")
	assert.Error(t, err)

	v, err := identity.NewStaffValidator("backoffice")
	require.NoError(t, err)
	_, err = v.ValidateToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
