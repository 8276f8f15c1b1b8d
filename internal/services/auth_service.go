package services

import (
	"TrailGuide/internal/config"
	"TrailGuide/internal/models"
	"TrailGuide/internal/repository"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService interface {
	// Authorize checks the bearer token in header, or the one-time token for
	// GET requests, against the scope the method requires.
	Authorize(ctx context.Context, header, oneTimeToken, method string) (*models.Principal, error)
	IssueOTT(ctx context.Context) (*models.OneTimeToken, error)
	IssueToken(subject string, scopes []string, ttl time.Duration) (string, error)
}

type authServiceImpl struct {
	tokenRepo     repository.TokenRepository
	configuration *config.Configuration
	now           func() time.Time
}

func NewAuthService(tokenRepo repository.TokenRepository, configuration *config.Configuration) AuthService {
	return &authServiceImpl{tokenRepo: tokenRepo, configuration: configuration, now: time.Now}
}

type scopedClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func unauthorized(reason string) error {
	return fmt.Errorf("%w: %s", models.ErrUnauthorized, reason)
}

func requiredScope(method string) string {
	if method == http.MethodGet || method == http.MethodHead {
		return models.ScopeReadContent
	}
	return models.ScopeManageContent
}

func (s *authServiceImpl) Authorize(ctx context.Context, header, oneTimeToken, method string) (*models.Principal, error) {
	var principal *models.Principal
	var err error
	switch {
	case header != "":
		principal, err = s.verifyBearer(header)
	case oneTimeToken != "" && method == http.MethodGet:
		principal, err = s.consumeOTT(ctx, oneTimeToken)
	default:
		return nil, unauthorized("no bearer token")
	}
	if err != nil {
		return nil, err
	}

	scope := requiredScope(method)
	if !principal.HasScope(scope) {
		return nil, unauthorized("missing scope: " + scope)
	}
	return principal, nil
}

func (s *authServiceImpl) verifyBearer(header string) (*models.Principal, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, unauthorized("invalid authorization header")
	}
	if s.configuration.Auth.Secret == "" {
		return nil, unauthorized("token verification is not configured")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
		jwt.WithTimeFunc(s.now),
	}
	if s.configuration.Auth.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.configuration.Auth.Issuer))
	}
	if s.configuration.Auth.Audience != "" {
		options = append(options, jwt.WithAudience(s.configuration.Auth.Audience))
	}

	claims := &scopedClaims{}
	_, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.configuration.Auth.Secret), nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, unauthorized("expired signature")
		}
		return nil, unauthorized("token error")
	}

	return &models.Principal{Subject: claims.Subject, Scopes: strings.Fields(claims.Scope)}, nil
}

func (s *authServiceImpl) consumeOTT(ctx context.Context, token string) (*models.Principal, error) {
	ott, err := s.tokenRepo.Consume(ctx, token, s.now().UTC())
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			return nil, unauthorized("invalid or expired one-time token")
		}
		return nil, err
	}
	return &models.Principal{Subject: "ott", Scopes: strings.Fields(ott.Scope)}, nil
}

func (s *authServiceImpl) IssueOTT(ctx context.Context) (*models.OneTimeToken, error) {
	now := s.now().UTC()
	if _, err := s.tokenRepo.DeleteExpired(ctx, now); err != nil {
		return nil, err
	}
	ott := &models.OneTimeToken{
		Token:  uuid.NewString(),
		Scope:  models.ScopeReadContent,
		Expiry: now.Add(time.Duration(s.configuration.Auth.OTTLifetime) * time.Second).Truncate(time.Second),
	}
	if err := s.tokenRepo.Create(ctx, ott); err != nil {
		return nil, err
	}
	return ott, nil
}

// IssueToken signs a bearer token with the configured secret. It exists for
// operators and tests; production tokens come from the identity provider.
func (s *authServiceImpl) IssueToken(subject string, scopes []string, ttl time.Duration) (string, error) {
	if s.configuration.Auth.Secret == "" {
		return "", errors.New("auth.secret is not configured")
	}
	now := s.now()
	claims := scopedClaims{
		Scope: strings.Join(scopes, " "),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.configuration.Auth.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if s.configuration.Auth.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.configuration.Auth.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.configuration.Auth.Secret))
}
