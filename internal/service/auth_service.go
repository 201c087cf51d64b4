package service

import (
	"encoding/json"
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/repository"
	"nextlevel_lms/internal/store"
	"nextlevel_lms/internal/util"
	"nextlevel_lms/pkg/logger"
	"sync"

	"go.uber.org/zap"
)

type SessionState string

const (
	SessionLoading       SessionState = "loading"
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
)

// Session is what callers gate protected views on.
type Session struct {
	IsAuthenticated bool              `json:"isAuthenticated"`
	IsLoading       bool              `json:"isLoading"`
	CurrentUser     *model.PublicUser `json:"currentUser"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Lastname        string `json:"lastname"`
	Cedula          string `json:"cedula"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Cedula   string `json:"cedula"`
	Password string `json:"password"`
}

// AuthService tracks the current user. It starts in the loading state until Restore
// has read the saved session; the session is persisted under current_user without
// the password.
type AuthService struct {
	UserRepo  *repository.UserRepository
	Store     *store.Store
	Passwords PasswordPolicy

	mu      sync.RWMutex
	state   SessionState
	current *model.PublicUser
}

func NewAuthService(userRepo *repository.UserRepository, st *store.Store, passwords PasswordPolicy) *AuthService {
	if passwords == nil {
		passwords = PlaintextPasswords{}
	}
	return &AuthService{
		UserRepo:  userRepo,
		Store:     st,
		Passwords: passwords,
		state:     SessionLoading,
	}
}

// Restore loads the saved session. A malformed saved session is discarded.
func (s *AuthService) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if raw, ok := s.Store.ReadRaw(util.KeySession); ok {
		var user model.PublicUser
		if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
			logger.Log.Warn("Discarding unreadable session", zap.String("key", util.KeySession), zap.Error(err))
			s.Store.Remove(util.KeySession)
		} else {
			s.current = &user
		}
	}

	if s.current != nil {
		s.state = SessionAuthenticated
	} else {
		s.state = SessionAnonymous
	}
}

// Register validates the request and creates the user. It does not log the user in.
func (s *AuthService) Register(req RegisterRequest) (*model.User, error) {
	if req.Name == "" || req.Lastname == "" || req.Cedula == "" || req.Password == "" {
		return nil, util.ErrMissingFields
	}
	if len([]rune(req.Password)) < util.MinPasswordLen {
		return nil, util.ErrWeakPassword
	}
	if req.Password != req.ConfirmPassword {
		return nil, util.ErrPasswordMismatch
	}

	_, err := s.UserRepo.FindByCedula(req.Cedula)
	if err == nil {
		return nil, util.ErrDuplicateUser
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	password, err := s.Passwords.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := s.UserRepo.Create(model.UserInput{
		Name:     req.Name,
		Lastname: req.Lastname,
		Cedula:   req.Cedula,
		Password: password,
	})
	logger.Log.Info("User registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login authenticates by cedula and password and persists the session.
func (s *AuthService) Login(req LoginRequest) (*model.PublicUser, error) {
	if req.Cedula == "" || req.Password == "" {
		return nil, util.ErrMissingCredentials
	}

	user, err := s.UserRepo.FindByCedula(req.Cedula)
	if err != nil || !s.Passwords.Matches(user.Password, req.Password) {
		return nil, util.ErrInvalidCredentials
	}

	public := user.Public()
	s.setCurrent(&public)
	return &public, nil
}

func (s *AuthService) Logout() {
	s.setCurrent(nil)
}

func (s *AuthService) setCurrent(user *model.PublicUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user
	if user == nil {
		s.state = SessionAnonymous
		s.Store.Remove(util.KeySession)
		return
	}
	s.state = SessionAuthenticated
	s.Store.WriteJSON(util.KeySession, user)
}

// CurrentUser returns a copy of the logged in user, or nil.
func (s *AuthService) CurrentUser() *model.PublicUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// RequireUser returns the current user or ErrNotAuthenticated.
func (s *AuthService) RequireUser() (*model.PublicUser, error) {
	user := s.CurrentUser()
	if user == nil {
		return nil, util.ErrNotAuthenticated
	}
	return user, nil
}

func (s *AuthService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *AuthService) IsAuthenticated() bool { return s.State() == SessionAuthenticated }

func (s *AuthService) IsLoading() bool { return s.State() == SessionLoading }

func (s *AuthService) Snapshot() Session {
	state := s.State()
	return Session{
		IsAuthenticated: state == SessionAuthenticated,
		IsLoading:       state == SessionLoading,
		CurrentUser:     s.CurrentUser(),
	}
}
