package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/store"
	"github.com/tair/storefront/pkg/logger"
)

// HTTPVerifier verifies credentials against a remote identity provider
type HTTPVerifier struct {
	baseURL    string
	client     *http.Client
	signingKey []byte
}

// NewHTTPVerifier creates a verifier for the given identity endpoint.
// signingKey may be nil; when set, the returned token's claims are
// validated and take precedence over the response body.
func NewHTTPVerifier(baseURL string, timeout time.Duration, signingKey []byte) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		signingKey: signingKey,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Verify posts the credentials to the identity provider's login endpoint
func (v *HTTPVerifier) Verify(ctx context.Context, email, secret string) (store.User, error) {
	payload, err := json.Marshal(loginRequest{Username: email, Password: secret})
	if err != nil {
		return store.User{}, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return store.User{}, fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Identity provider unreachable")
		return store.User{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return store.User{}, ErrInvalidCredentials
	default:
		return store.User{}, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return store.User{}, fmt.Errorf("%w: malformed login response", ErrUnavailable)
	}

	user := store.User{ID: body.ID, Email: body.Email, Name: body.Name}

	if len(v.signingKey) > 0 {
		claims, err := v.parseClaims(body.Token)
		if err != nil {
			return store.User{}, err
		}
		user = claims
	}

	if user.Email == "" {
		user.Email = email
	}
	return user, nil
}

type userClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// parseClaims validates the session token and extracts the user identity
func (v *HTTPVerifier) parseClaims(token string) (store.User, error) {
	parsed, err := jwt.ParseWithClaims(token, &userClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.signingKey, nil
	})
	if err != nil {
		return store.User{}, fmt.Errorf("%w: invalid session token", ErrUnavailable)
	}

	claims, ok := parsed.Claims.(*userClaims)
	if !ok || !parsed.Valid {
		return store.User{}, fmt.Errorf("%w: invalid session token", ErrUnavailable)
	}

	return store.User{ID: claims.Subject, Email: claims.Email, Name: claims.Name}, nil
}
