package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"todo_service/internal/models"
	"todo_service/internal/repository"
)

const tokenTTL = time.Hour // 1 hour

// Domain errors for auth flows.
var (
	// ErrInvalidCredentials covers both "no such email" and "wrong password",
	// so the response text cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidToken       = errors.New("invalid token")
)

// Same shape the account store enforced upstream: word characters with single
// optional ./- separators, then a domain plus 2-3 letter TLD segments.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// AccountService handles registration, login and account maintenance.
type AccountService struct {
	userRepo   repository.UserStore
	signingKey []byte
}

func NewAccountService(repo repository.UserStore, signingSecret string) *AccountService {
	return &AccountService{userRepo: repo, signingKey: []byte(signingSecret)}
}

// Claims defines the JWT payload issued on register and login.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	Username string `json:"username"`
	UserID   string `json:"user_id,omitempty"`
}

// Register validates and normalizes the email, hashes the password, creates
// the user and issues a token. Uniqueness conflicts come back from the store
// as repository.ErrEmailTaken / repository.ErrUsernameTaken.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("invalid password: %w", err)
	}

	u := &models.User{
		Username:     username,
		Email:        normalized,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login checks the credentials and returns the user plus a fresh token. Both
// an unknown email and a wrong password collapse into ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	found, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return nil
}

// UpdateDetails patches username and/or email. A new email is validated and
// lowercased exactly like on register.
func (s *AccountService) UpdateDetails(ctx context.Context, id string, d AccountDetails) (*models.User, error) {
	patch := repository.DetailsPatch{Username: d.Username}
	if d.Email != nil {
		normalized, err := normalizeEmail(*d.Email)
		if err != nil {
			return nil, err
		}
		patch.Email = &normalized
	}

	u, err := s.userRepo.UpdateDetails(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdatePassword re-hashes and stores the new password.
func (s *AccountService) UpdatePassword(ctx context.Context, id, password string) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}
	u, err := s.userRepo.UpdatePassword(ctx, id, hash)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// ParseToken verifies a token issued by Register/Login and returns its claims.
// No route consumes this; protecting resources sits outside this service.
func (s *AccountService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// helper: issue a signed JWT for a user
func (s *AccountService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email:    u.Email,
		Username: u.Username,
		UserID:   u.ID,
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// helper: lowercase and pattern-check an email address
func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(normalized) {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
