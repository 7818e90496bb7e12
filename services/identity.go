package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tierevents/db"
	"tierevents/models"
)

// IdentityService is the built-in identity provider used when no external one is
// configured. It issues the same session tokens the auth middleware verifies.
type IdentityService struct {
	accounts   AccountStore
	tokens     *TokenIssuer
	bcryptCost int
}

func NewIdentityService(accounts AccountStore, tokens *TokenIssuer) *IdentityService {
	return &IdentityService{accounts: accounts, tokens: tokens, bcryptCost: bcrypt.DefaultCost}
}

type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// SignUp creates an account with a fresh subject id and returns a session token.
func (s *IdentityService) SignUp(ctx context.Context, in SignUpInput) (*models.Account, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create account: %w: %w", ErrStoreUnavailable, err)
	}

	token, err := s.tokens.Issue(account.Identity())
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// SignIn checks credentials and returns a session token.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", fmt.Errorf("load account: %w: %w", ErrStoreUnavailable, err)
	}
	if account == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.Identity())
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// sessionClaims mirror the OIDC profile claims an external provider would send.
type sessionClaims struct {
	Email      string `json:"email,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Picture    string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret, issuer string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}
}

// TTL is how long issued tokens stay valid.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

func (t *TokenIssuer) Issue(id models.Identity) (string, error) {
	now := t.now()
	claims := sessionClaims{
		Email:      id.Email,
		GivenName:  id.FirstName,
		FamilyName: id.LastName,
		Picture:    id.ImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses a token and returns the identity it carries.
func (t *TokenIssuer) Verify(tokenString string) (*models.Identity, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	},
		jwt.WithIssuer(t.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &models.Identity{
		ID:        claims.Subject,
		Email:     claims.Email,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
		ImageURL:  claims.Picture,
	}, nil
}
