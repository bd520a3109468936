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

// LINEIssuer is the iss claim of every LINE Login ID token.
const LINEIssuer = "https://access.line.me"

// HeaderRiderID is read by the development middleware.
const HeaderRiderID = "X-Rider-ID"

// TokenValidator validates a raw bearer token. *validator.Validator
// satisfies it.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (any, error)
}

// NewLINEValidator returns a validator for LINE Login ID tokens. LINE signs
// them with HS256 using the channel secret and sets aud to the channel id.
func NewLINEValidator(channelID, channelSecret string) (*validator.Validator, error) {
	if channelID == "" || channelSecret == "" {
		return nil, fmt.Errorf("identity.NewLINEValidator: channel id and secret are required")
	}
	key := []byte(channelSecret)
	v, err := validator.New(
		func(context.Context) (any, error) { return key, nil },
		validator.HS256,
		LINEIssuer,
		[]string{channelID},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("identity.NewLINEValidator: %w", err)
	}
	return v, nil
}

// LINE returns a middleware that authenticates bearer tokens with v and
// attaches the token subject as the rider id. Requests without a token pass
// through anonymously; a present but invalid token is rejected with 401.
func LINE(v TokenValidator, log *slog.Logger) func(http.Handler) http.Handler {
	jwt := jwtmiddleware.New(
		v.ValidateToken,
		jwtmiddleware.WithCredentialsOptional(true),
		jwtmiddleware.WithValidateOnOptions(false),
		jwtmiddleware.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			log.WarnContext(r.Context(), "rejected bearer token", "error", err)
			writeUnauthorized(w, "invalid or expired token")
		}),
	)
	return func(next http.Handler) http.Handler {
		attach := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims); ok {
				if sub := claims.RegisteredClaims.Subject; sub != "" {
					r = r.WithContext(WithRiderID(r.Context(), sub))
				}
			}
			next.ServeHTTP(w, r)
		})
		return jwt.CheckJWT(attach)
	}
}

// Header returns a development middleware trusting the X-Rider-ID header.
func Header() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := strings.TrimSpace(r.Header.Get(HeaderRiderID)); id != "" {
				r = r.WithContext(WithRiderID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	var body errorBody
	body.Error.Code = "login_required"
	body.Error.Message = message
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(body)
}
