package client

import (
	"encoding/json"
	"sync"
)

// AuthStore tracks the signed-in user and keeps the credentials
// persisted so a new session can resume without logging in again.
type AuthStore struct {
	api *API

	mu   sync.RWMutex
	user *User
}

// NewAuthStore creates the store and restores a persisted session, if any.
func NewAuthStore(api *API) *AuthStore {
	s := &AuthStore{api: api}
	s.restore()
	return s
}

func (s *AuthStore) restore() {
	if s.api.Token() == "" {
		return
	}
	raw, ok := s.api.storage.Get(userStorageKey)
	if !ok {
		return
	}
	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return
	}
	s.user = &user
}

func (s *AuthStore) setUser(user User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if raw, err := json.Marshal(user); err == nil {
		_ = s.api.storage.Set(userStorageKey, string(raw))
	}
}

func (s *AuthStore) clearUser() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
}

// Login authenticates and caches the user.
func (s *AuthStore) Login(email, password string) error {
	resp, err := s.api.Login(email, password)
	if err != nil {
		s.clearUser()
		s.api.ClearAuth()
		return err
	}
	s.setUser(resp.User)
	return nil
}

// Register creates an account and signs in.
func (s *AuthStore) Register(fullName, email, password string) error {
	resp, err := s.api.Register(fullName, email, password)
	if err != nil {
		return err
	}
	s.setUser(resp.User)
	return nil
}

// Logout revokes the session. Local state is cleared even when the
// server call fails.
func (s *AuthStore) Logout() error {
	err := s.api.Logout()
	s.clearUser()
	return err
}

// FetchUser refreshes the cached user from the server.
func (s *AuthStore) FetchUser() (User, error) {
	user, err := s.api.Me()
	if err != nil {
		return User{}, err
	}
	s.setUser(user)
	return user, nil
}

// User returns the cached user, if signed in.
func (s *AuthStore) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user and token are present.
func (s *AuthStore) IsAuthenticated() bool {
	_, ok := s.User()
	return ok && s.api.Token() != ""
}

// Role returns the signed-in user's role ("user" when anonymous).
func (s *AuthStore) Role() string {
	user, ok := s.User()
	if !ok {
		return "user"
	}
	return user.Role
}

// IsAdmin reports whether the signed-in user is an admin.
func (s *AuthStore) IsAdmin() bool {
	return s.Role() == "admin"
}
