package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"focal/config"
	"focal/internal/auth"
	"focal/internal/domain"
	"focal/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidCreds      = errors.New("invalid email or password")
	ErrAccountSuspended  = errors.New("account is suspended")
	ErrGoogleIDTaken     = errors.New("google account already linked to another user")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrNoPassword        = errors.New("account uses Google sign-in; set a password first")
)

// UserStore is the persistence surface the session manager needs.
type UserStore interface {
	Create(*models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
	GetByResetToken(tokenHash string) (*models.User, error)
	Update(*models.User) error
	SetRefreshToken(userID uint, token string) error
}

// AuthService issues and rotates session tokens. Each account holds exactly
// one active refresh token; every login or refresh replaces it, so older
// refresh tokens become permanently invalid.
type AuthService struct {
	cfg   *config.Config
	users UserStore
}

func NewAuthService(cfg *config.Config, users UserStore) *AuthService {
	return &AuthService{cfg: cfg, users: users}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Role      string
}

func (s *AuthService) Register(in RegisterInput) (*models.User, string, string, error) {
	_, err := s.users.GetByEmail(in.Email)
	if err == nil {
		return nil, "", "", ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	role := in.Role
	if role != domain.RolePhotographer {
		role = domain.RoleCustomer
	}
	u := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Role:         role,
		IsActive:     true,
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", "", err
	}
	access, refresh, err := s.issueTokens(u)
	if err != nil {
		return u, "", "", err
	}
	return u, access, refresh, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, string, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", ErrInvalidCreds
		}
		return nil, "", "", err
	}
	if u.PasswordHash == "" {
		return nil, "", "", ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCreds
	}
	if !u.IsActive {
		return nil, "", "", ErrAccountSuspended
	}
	access, refresh, err := s.issueTokens(u)
	if err != nil {
		return nil, "", "", err
	}
	return u, access, refresh, nil
}

// Refresh validates the presented token, requires exact equality with the
// one stored token for that account, and rotates the pair. A replayed
// just-rotated token fails closed with a generic invalid-token error.
func (s *AuthService) Refresh(refreshToken string) (string, string, error) {
	userID, err := auth.ParseRefreshToken(&s.cfg.JWT, refreshToken)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	u, err := s.users.GetByID(userID)
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}
	if !u.IsActive {
		return "", "", ErrAccountSuspended
	}
	if u.RefreshToken == "" || u.RefreshToken != refreshToken {
		return "", "", auth.ErrInvalidToken
	}
	return s.issueTokens(u)
}

// Logout clears the stored refresh token. The live access token is not
// invalidated; it expires naturally (soft logout).
func (s *AuthService) Logout(userID uint) error {
	return s.users.SetRefreshToken(userID, "")
}

// LoginWithGoogle finds the account by Google ID, falls back to linking by
// email, else creates a new verified account. A Google ID already bound to a
// different account is rejected.
func (s *AuthService) LoginWithGoogle(googleID, email, firstName, lastName, avatarURL string) (*models.User, string, string, bool, error) {
	u, err := s.users.GetByGoogleID(googleID)
	if err == nil {
		if !u.IsActive {
			return nil, "", "", false, ErrAccountSuspended
		}
		access, refresh, err := s.issueTokens(u)
		return u, access, refresh, false, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", false, err
	}
	existing, err := s.users.GetByEmail(email)
	if err == nil {
		if existing.GoogleID != nil && *existing.GoogleID != googleID {
			return nil, "", "", false, ErrGoogleIDTaken
		}
		if !existing.IsActive {
			return nil, "", "", false, ErrAccountSuspended
		}
		gid := googleID
		existing.GoogleID = &gid
		existing.EmailVerified = true
		if avatarURL != "" && existing.AvatarURL == "" {
			existing.AvatarURL = avatarURL
		}
		if err := s.users.Update(existing); err != nil {
			return nil, "", "", false, err
		}
		access, refresh, err := s.issueTokens(existing)
		return existing, access, refresh, false, err
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", "", false, err
	}
	gid := googleID
	u = &models.User{
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		GoogleID:      &gid,
		Role:          domain.RoleCustomer,
		AvatarURL:     avatarURL,
		EmailVerified: true,
		IsActive:      true,
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", "", false, err
	}
	access, refresh, err := s.issueTokens(u)
	return u, access, refresh, true, err
}

func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return ErrInvalidCreds
	}
	if !u.IsActive {
		return ErrAccountSuspended
	}
	if u.PasswordHash == "" {
		return ErrNoPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCreds
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return s.users.Update(u)
}

// ForgotPassword stores a hashed one-hour reset token. Email delivery is out
// of scope; the token is logged so an operator can relay it.
func (s *AuthService) ForgotPassword(email string) error {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // do not reveal whether the email exists
		}
		return err
	}
	if !u.IsActive {
		return nil
	}
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	u.ResetPasswordToken = hashResetToken(token)
	expires := time.Now().Add(time.Hour)
	u.ResetPasswordExpiresAt = &expires
	if err := s.users.Update(u); err != nil {
		return err
	}
	log.Printf("[auth] password reset token for %s: %s", u.Email, token)
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	u, err := s.users.GetByResetToken(hashResetToken(token))
	if err != nil {
		return ErrInvalidResetToken
	}
	if u.ResetPasswordExpiresAt == nil || u.ResetPasswordExpiresAt.Before(time.Now()) {
		return ErrInvalidResetToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.ResetPasswordToken = ""
	u.ResetPasswordExpiresAt = nil
	u.RefreshToken = "" // force re-login everywhere
	return s.users.Update(u)
}

func (s *AuthService) issueTokens(u *models.User) (string, string, error) {
	access, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := auth.GenerateRefreshToken(&s.cfg.JWT, u.ID)
	if err != nil {
		return "", "", err
	}
	if err := s.users.SetRefreshToken(u.ID, refresh); err != nil {
		return "", "", err
	}
	u.RefreshToken = refresh
	return access, refresh, nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
