package service

import (
	"errors"
	"testing"
	"time"

	"focal/config"
	"focal/internal/auth"
	"focal/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-access-secret",
			RefreshSecret: "test-refresh-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: 24 * time.Hour,
			Issuer:        "focal-test",
		},
	}
}

func TestRegisterStoresSingleRefreshToken(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(testConfig(), users)

	u, access, refresh, err := svc.Register(RegisterInput{
		FirstName: "Ana", LastName: "Tremblay", Email: "ana@example.com",
		Password: "secret123", Role: domain.RoleCustomer,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected token pair, got access=%q refresh=%q", access, refresh)
	}
	stored, _ := users.GetByID(u.ID)
	if stored.RefreshToken != refresh {
		t.Fatalf("stored refresh token does not match issued one")
	}

	// Logging in again replaces the stored token: the old one is dead.
	_, _, refresh2, err := svc.Login("ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if refresh2 == refresh {
		t.Fatalf("login should rotate the refresh token")
	}
	if stored.RefreshToken != refresh2 {
		t.Fatalf("stored token should be the latest one")
	}
	if _, _, err := svc.Refresh(refresh); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("old refresh token should be invalid after login, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(testConfig(), users)
	in := RegisterInput{FirstName: "A", LastName: "B", Email: "dup@example.com", Password: "secret123"}
	if _, _, _, err := svc.Register(in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, _, err := svc.Register(in); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRefreshReplayFailsClosed(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(testConfig(), users)
	_, _, refresh, err := svc.Register(RegisterInput{
		FirstName: "A", LastName: "B", Email: "replay@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, refresh2, err := svc.Refresh(refresh)
	if err != nil {
		t.Fatalf("first refresh: %v", err)
	}
	if refresh2 == refresh {
		t.Fatalf("refresh should rotate the token")
	}
	// Replaying the now-rotated token must fail with the generic error.
	if _, _, err := svc.Refresh(refresh); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("replay should fail with ErrInvalidToken, got %v", err)
	}
	// The latest token still works.
	if _, _, err := svc.Refresh(refresh2); err != nil {
		t.Fatalf("latest token should refresh: %v", err)
	}
}

func TestLogoutIsSoft(t *testing.T) {
	users := newFakeUserStore()
	cfg := testConfig()
	svc := NewAuthService(cfg, users)
	u, access, refresh, err := svc.Register(RegisterInput{
		FirstName: "A", LastName: "B", Email: "soft@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Logout(u.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, _, err := svc.Refresh(refresh); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("refresh after logout should fail, got %v", err)
	}
	// The access token is untouched; it simply expires on its own.
	if _, err := auth.ParseAccessToken(&cfg.JWT, access); err != nil {
		t.Fatalf("access token should still parse after logout: %v", err)
	}
}

func TestSuspendedAccountFailsEveryOperation(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(testConfig(), users)
	u, _, refresh, err := svc.Register(RegisterInput{
		FirstName: "A", LastName: "B", Email: "susp@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	u.IsActive = false

	if _, _, _, err := svc.Login("susp@example.com", "secret123"); !errors.Is(err, ErrAccountSuspended) {
		t.Fatalf("login: expected ErrAccountSuspended, got %v", err)
	}
	if _, _, err := svc.Refresh(refresh); !errors.Is(err, ErrAccountSuspended) {
		t.Fatalf("refresh: expected ErrAccountSuspended, got %v", err)
	}
	if err := svc.ChangePassword(u.ID, "secret123", "newsecret1"); !errors.Is(err, ErrAccountSuspended) {
		t.Fatalf("change password: expected ErrAccountSuspended, got %v", err)
	}
}

func TestGoogleLoginLinksAndCreates(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(testConfig(), users)

	// Brand-new Google user gets a verified customer account.
	u, _, _, isNew, err := svc.LoginWithGoogle("g-123", "new@example.com", "New", "User", "")
	if err != nil {
		t.Fatalf("google login: %v", err)
	}
	if !isNew || !u.EmailVerified || u.Role != domain.RoleCustomer {
		t.Fatalf("expected new verified customer, got new=%v verified=%v role=%s", isNew, u.EmailVerified, u.Role)
	}

	// Existing password account gets linked by email.
	pw, _, _, err := svc.Register(RegisterInput{
		FirstName: "P", LastName: "W", Email: "pw@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	linked, _, _, isNew, err := svc.LoginWithGoogle("g-456", "pw@example.com", "P", "W", "")
	if err != nil {
		t.Fatalf("google link: %v", err)
	}
	if isNew || linked.ID != pw.ID || linked.GoogleID == nil || *linked.GoogleID != "g-456" {
		t.Fatalf("expected link to existing account, got %+v", linked)
	}

	// A Google ID already bound elsewhere is rejected for this email.
	if _, _, _, _, err := svc.LoginWithGoogle("g-999", "pw@example.com", "P", "W", ""); !errors.Is(err, ErrGoogleIDTaken) {
		t.Fatalf("expected ErrGoogleIDTaken, got %v", err)
	}
}

func TestResetPasswordInvalidatesSession(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(testConfig(), users)
	u, _, refresh, err := svc.Register(RegisterInput{
		FirstName: "A", LastName: "B", Email: "reset@example.com", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.ForgotPassword("reset@example.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}
	if u.ResetPasswordToken == "" || u.ResetPasswordExpiresAt == nil {
		t.Fatalf("reset token should be stored hashed with an expiry")
	}
	// Unknown email must not error (no account enumeration).
	if err := svc.ForgotPassword("nobody@example.com"); err != nil {
		t.Fatalf("forgot for unknown email: %v", err)
	}
	if err := svc.ResetPassword("not-the-token", "another123"); !errors.Is(err, ErrInvalidResetToken) {
		t.Fatalf("expected ErrInvalidResetToken, got %v", err)
	}
	// Simulate the token arriving out of band: store a known hash.
	u.ResetPasswordToken = hashResetToken("known-token")
	if err := svc.ResetPassword("known-token", "another123"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, _, _, err := svc.Login("reset@example.com", "another123"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, _, err := svc.Refresh(refresh); err == nil {
		t.Fatalf("old session should be invalid after password reset")
	}
}
