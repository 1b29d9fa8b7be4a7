package services

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/CFBruna/fullstack-product-manager/internal/apperrors"
	"github.com/CFBruna/fullstack-product-manager/internal/models"
	"github.com/CFBruna/fullstack-product-manager/internal/repositories"
)

// ErrInvalidToken is the uniform verification failure. Bad signature,
// malformed token and expiry all collapse into it so the caller cannot tell
// the sub-cases apart.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the principal data recovered from a verified token.
type TokenClaims struct {
	ID    uint
	Email string
}

// AuthService handles password hashing, credential checks and JWT issuance.
type AuthService struct {
	userRepo      repositories.UserRepository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new AuthService. Tokens are valid for 24 hours.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: 24 * time.Hour,
	}
}

// Register creates a new user with a bcrypt-hashed password. A claimed email
// is rejected with 400.
func (s *AuthService) Register(input models.RegisterInput) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, apperrors.New("User already exists", http.StatusBadRequest)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and issues a signed token. Unknown email and
// wrong password produce the same message to avoid user enumeration.
func (s *AuthService) Login(input models.LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", apperrors.New("Invalid email or password", http.StatusUnauthorized)
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", apperrors.New("Invalid email or password", http.StatusUnauthorized)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken signs a JWT carrying the user's id and email, expiring one
// day after issuance.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"jti":   uuid.New().String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenDuration).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies signature and expiry and recovers the embedded
// principal. Every failure maps to ErrInvalidToken; the underlying cause is
// only logged server-side.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("Token validation error: %v", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{ID: uint(id), Email: email}, nil
}
