package auth

import (
	"log/slog"
	"smartshop/domain"
	"smartshop/errors"
	"smartshop/storage"
	"sync"
	"time"
)

type State int

const (
	Anonymous State = iota
	Authenticated
	Expired
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	default:
		return "anonymous"
	}
}

// Keys names the store entries a console session lives under.
// An empty User key means the console does not keep its user around.
type Keys struct {
	Token string
	User  string
}

var (
	AdminKeys      = Keys{Token: storage.KeyAdminToken, User: storage.KeyAdminUser}
	SuperAdminKeys = Keys{Token: storage.KeySuperAdminToken}
)

// Session holds the bearer token of a console and mirrors it to the store,
// so a restarted console resumes without logging in again.
type Session struct {
	store storage.IStore
	keys  Keys
	log   *slog.Logger
	now   func() time.Time

	mu    sync.RWMutex
	state State
	token string
	user  domain.AdminUser
}

func NewSession(store storage.IStore, keys Keys, log *slog.Logger) *Session {
	return &Session{
		store: store,
		keys:  keys,
		log:   log,
		now:   time.Now,
	}
}

// Restore loads the persisted token, if any, and decides the starting state.
func (s *Session) Restore() State {
	token := storage.Get(s.store, s.keys.Token, "")
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		s.state = Anonymous
		return s.state
	}
	if IsExpired(token, s.now()) {
		s.log.Info("Stored token has expired", "key", s.keys.Token)
		s.forget()
		s.state = Expired
		return s.state
	}
	s.token = token
	if s.keys.User != "" {
		s.user = storage.Get(s.store, s.keys.User, domain.AdminUser{})
	}
	s.state = Authenticated
	return s.state
}

func (s *Session) Login(token string, user domain.AdminUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user
	s.state = Authenticated
	if !storage.Set(s.store, s.keys.Token, token) {
		s.log.Warn("Token not persisted", "key", s.keys.Token)
	}
	if s.keys.User != "" && !storage.Set(s.store, s.keys.User, user) {
		s.log.Warn("User not persisted", "key", s.keys.User)
	}
}

func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forget()
	s.state = Anonymous
}

// Expire is called when the backend refused the token.
func (s *Session) Expire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Authenticated {
		s.log.Warn("Session expired", "key", s.keys.Token)
	}
	s.forget()
	s.state = Expired
}

// Token returns the bearer token, checking its exp claim on the way out.
func (s *Session) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case Anonymous:
		return "", errors.ErrNotAuthenticated
	case Expired:
		return "", errors.ErrSessionExpired
	}
	if IsExpired(s.token, s.now()) {
		s.forget()
		s.state = Expired
		return "", errors.ErrSessionExpired
	}
	return s.token, nil
}

func (s *Session) User() domain.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// forget drops the token from memory and store. Callers hold mu.
func (s *Session) forget() {
	s.token = ""
	s.user = domain.AdminUser{}
	storage.Remove(s.store, s.keys.Token)
	if s.keys.User != "" {
		storage.Remove(s.store, s.keys.User)
	}
}
