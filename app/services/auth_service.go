package services

import "github.com/shashiranjanraj/bistro/pkg/auth"

// AuthService issues access tokens. Any email may request a token; what
// the token lets its holder do is decided per-request by the middleware,
// never baked into the token itself.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// IssueToken signs a short-lived token for the given email.
func (s *AuthService) IssueToken(email string) (string, error) {
	return auth.GenerateToken(email)
}
