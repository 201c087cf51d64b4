package service_test

import (
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"
	"strings"
	"testing"
)

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		req  service.RegisterRequest
		want error
	}{
		{"missing name", service.RegisterRequest{Lastname: "L", Cedula: "1", Password: "secret1", ConfirmPassword: "secret1"}, util.ErrMissingFields},
		{"weak password", service.RegisterRequest{Name: "A", Lastname: "L", Cedula: "1", Password: "12345", ConfirmPassword: "12345"}, util.ErrWeakPassword},
		{"mismatch", service.RegisterRequest{Name: "A", Lastname: "L", Cedula: "1", Password: "secret1", ConfirmPassword: "secret2"}, util.ErrPasswordMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if _, err := f.auth.Register(tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if f.repos.Users.Count() != 0 {
				t.Fatalf("no user should be created")
			}
		})
	}
}

func TestRegisterCountsRunesNotBytes(t *testing.T) {
	f := newFixture(t)
	_, err := f.auth.Register(service.RegisterRequest{Name: "A", Lastname: "L", Cedula: "1", Password: "ñññññ", ConfirmPassword: "ñññññ"})
	if !errors.Is(err, util.ErrWeakPassword) {
		t.Fatalf("five characters should be too short, got %v", err)
	}
}

func TestRegisterDuplicateCedula(t *testing.T) {
	f := newFixture(t)
	f.login(t, "V1")
	_, err := f.auth.Register(service.RegisterRequest{Name: "B", Lastname: "L", Cedula: "V1", Password: "secret1", ConfirmPassword: "secret1"})
	if !errors.Is(err, util.ErrDuplicateUser) || util.KindOf(err) != util.KindConflict {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	f := newFixture(t)
	if _, err := f.auth.Register(service.RegisterRequest{Name: "Ana", Lastname: "L", Cedula: "V1", Password: "secret1", ConfirmPassword: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if f.auth.IsAuthenticated() {
		t.Fatalf("register must not start a session")
	}
}

func TestLoginPersistsSessionWithoutPassword(t *testing.T) {
	f := newFixture(t)
	user := f.login(t, "V1")

	if !f.auth.IsAuthenticated() || f.auth.CurrentUser().ID != user.ID {
		t.Fatalf("expected authenticated session")
	}

	stored, err := f.repos.Users.FindByCedula("V1")
	if err != nil || stored.Password != "secret1" {
		t.Fatalf("stored user should keep the password: %+v %v", stored, err)
	}

	raw, ok := f.repos.Medium.Raw(util.KeySession)
	if !ok {
		t.Fatalf("session not persisted")
	}
	if strings.Contains(raw, "password") || strings.Contains(raw, "secret1") {
		t.Fatalf("session leaks the password: %s", raw)
	}

	// A new service over the same medium restores the session.
	restored := newFixtureOn(t, f.repos.Medium)
	if got := restored.auth.CurrentUser(); got == nil || got.ID != user.ID {
		t.Fatalf("session not restored: %+v", got)
	}
}

func TestLoginErrors(t *testing.T) {
	f := newFixture(t)
	f.login(t, "V1")
	f.auth.Logout()

	if _, err := f.auth.Login(service.LoginRequest{Cedula: "V1"}); !errors.Is(err, util.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := f.auth.Login(service.LoginRequest{Cedula: "V1", Password: "wrong!"}); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := f.auth.Login(service.LoginRequest{Cedula: "V2", Password: "secret1"}); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown cedula should read as invalid credentials, got %v", err)
	}
	if f.auth.IsAuthenticated() {
		t.Fatalf("failed login must not authenticate")
	}
}

func TestLogoutRemovesSession(t *testing.T) {
	f := newFixture(t)
	f.login(t, "V1")
	f.auth.Logout()

	if f.auth.CurrentUser() != nil || f.auth.State() != service.SessionAnonymous {
		t.Fatalf("expected anonymous session after logout")
	}
	if _, ok := f.repos.Medium.Raw(util.KeySession); ok {
		t.Fatalf("session key should be removed")
	}
	if _, err := f.auth.RequireUser(); !errors.Is(err, util.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSessionStates(t *testing.T) {
	f := newFixture(t)
	auth := service.NewAuthService(f.repos.Users, f.repos.Store, nil)
	if !auth.IsLoading() || !auth.Snapshot().IsLoading {
		t.Fatalf("new service should be loading")
	}
	auth.Restore()
	if auth.IsLoading() || auth.IsAuthenticated() {
		t.Fatalf("restore without a session should be anonymous, got %s", auth.State())
	}
}

func TestRestoreDiscardsMalformedSession(t *testing.T) {
	f := newFixture(t)
	f.repos.Medium.Put(util.KeySession, "{broken")

	f.auth.Restore()
	if f.auth.IsAuthenticated() {
		t.Fatalf("malformed session must not authenticate")
	}
	if _, ok := f.repos.Medium.Raw(util.KeySession); ok {
		t.Fatalf("malformed session should be removed")
	}
}

func TestBcryptPasswords(t *testing.T) {
	f := newFixture(t)
	f.auth.Passwords = service.BcryptPasswords{Cost: 4}
	f.login(t, "V1")

	stored, _ := f.repos.Users.FindByCedula("V1")
	if stored.Password == "secret1" || !strings.HasPrefix(stored.Password, "$2") {
		t.Fatalf("password should be hashed, got %q", stored.Password)
	}
	if _, err := f.auth.Login(service.LoginRequest{Cedula: "V1", Password: "secret2"}); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password accepted")
	}
}

func TestNewPasswordPolicy(t *testing.T) {
	if _, ok := service.NewPasswordPolicy(false).(service.PlaintextPasswords); !ok {
		t.Fatalf("expected plaintext policy")
	}
	if _, ok := service.NewPasswordPolicy(true).(service.BcryptPasswords); !ok {
		t.Fatalf("expected bcrypt policy")
	}
}

func TestPublicUserName(t *testing.T) {
	u := model.PublicUser{Name: "Ana", Lastname: "Lopez"}
	if u.FullName() != "Ana Lopez" {
		t.Fatalf("full name = %q", u.FullName())
	}
}
