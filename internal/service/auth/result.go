package auth

import "github.com/lmdrew96/FeyForge-sub001/internal/domain"

// AuthResult is returned by Register, Login and Refresh.
type AuthResult struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"` // raw token, NOT hash
	User         *domain.User `json:"user"`
}
