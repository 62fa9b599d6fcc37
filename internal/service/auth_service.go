package service

import (
	"errors"
	"os"

	"agritrace/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// DTOs
type LoginAsRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type TokenResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// AuthService owns the demo user roster and the current-identity lookup.
// There is no real authentication: "login" switches between the seeded demo
// users and hands back a signed session token for the chosen identity.
type AuthService interface {
	LoginAs(userID string) (*TokenResponse, error)
	UserByID(id string) *model.User
	Users() []model.User
}

type authService struct {
	users []model.User
}

// NewAuthService returns an AuthService seeded with the demo users.
func NewAuthService() AuthService {
	return &authService{users: seedUsers()}
}

func seedUsers() []model.User {
	return []model.User{
		{
			ID:           "user-admin",
			Name:         "Admin User",
			Email:        "admin@agritrace.cd",
			Role:         model.RoleAdmin,
			Partnerships: []string{},
		},
		{
			ID:           "user-buyer-1",
			Name:         "International Coffee Traders",
			Email:        "buyer@ict.com",
			Role:         model.RoleBuyer,
			Partnerships: []string{"coop-kivu", "coop-equateur"},
		},
		{
			ID:            "user-coop-manager-1",
			Name:          "Jean-Pierre Lumumba",
			Email:         "manager@coopec-kivu.cd",
			Role:          model.RoleCooperative,
			Partnerships:  []string{},
			CooperativeID: "coop-kivu",
		},
	}
}

func (s *authService) LoginAs(userID string) (*TokenResponse, error) {
	user := s.UserByID(userID)
	if user == nil {
		return nil, errors.New("user not found")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
	})

	// Same fallback strategy as the middleware
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_super_secret_key"
	}

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &TokenResponse{Token: tokenString, User: *user}, nil
}

// UserByID returns the user with the given id, or nil when the id does not
// resolve. Callers treat nil as an empty permission set.
func (s *authService) UserByID(id string) *model.User {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

func (s *authService) Users() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}
