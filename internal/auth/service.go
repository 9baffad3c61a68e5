// Package auth is the session facade over the store. It tracks who is
// currently logged in, persists that pointer to a separate session-scoped
// storage slot, and mediates the account-management calls the presentation
// layer is allowed to make.
package auth

import (
	"context"
	"errors"

	"animegallery/internal/common"
	"animegallery/internal/logging"
	"animegallery/internal/models"
	"animegallery/internal/storage"
	"animegallery/internal/store"
)

// SessionKey is the storage slot holding the current session token.
const SessionKey = "anime-gallery-session"

// Result is the outcome of an account-management call, carrying the message
// the presentation layer shows verbatim.
type Result struct {
	OK      bool
	Message string
}

// Service is the session facade. It holds at most one logged-in account at
// a time and a locally cached account list kept current after successful
// mutations.
type Service struct {
	store    *store.Store
	session  storage.Storage
	secret   []byte
	log      logging.Logger
	current  *models.Account
	accounts []models.Account
}

// NewService builds a facade over st, restoring a previous session from the
// session slot when it holds a valid token for an account that still
// exists. Anything else (garbage, tampering, a vanished account) leaves the
// service logged out.
func NewService(ctx context.Context, st *store.Store, session storage.Storage, secret []byte, log logging.Logger) *Service {
	s := &Service{
		store:    st,
		session:  session,
		secret:   secret,
		log:      log,
		accounts: st.ListAccounts(),
	}
	s.restore(ctx)
	return s
}

func (s *Service) restore(ctx context.Context) {
	raw, err := s.session.Read(ctx, SessionKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read session slot", "error", err)
		return
	}
	if raw == nil {
		return
	}

	claims, err := parseSessionToken(s.secret, string(raw))
	if err != nil {
		s.log.Debug(ctx, "ignoring unusable session token", "error", err)
		return
	}

	for i := range s.accounts {
		if s.accounts[i].ID == claims.UserID {
			cp := s.accounts[i]
			s.current = &cp
			s.log.Info(ctx, "session restored", "username", cp.Username)
			return
		}
	}
	s.log.Debug(ctx, "session token references an unknown account", "uid", claims.UserID)
}

// Login authenticates against the store. On success the account becomes
// current and a session token is written to the slot; on failure the state
// is unchanged. The caller shows one generic message for any failure.
func (s *Service) Login(ctx context.Context, username, password string) bool {
	acc, err := s.store.Authenticate(username, password)
	if err != nil {
		return false
	}

	s.current = acc

	token, err := newSessionToken(s.secret, acc)
	if err != nil {
		s.log.Error(ctx, "failed to create session token", "error", err)
		return true
	}
	if err := s.session.Write(ctx, SessionKey, []byte(token)); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
	}
	return true
}

// Logout unconditionally clears the current account and the session slot.
func (s *Service) Logout(ctx context.Context) {
	s.current = nil
	if err := s.session.Remove(ctx, SessionKey); err != nil {
		s.log.Error(ctx, "failed to clear session", "error", err)
	}
}

// Current returns a copy of the logged-in account, or nil.
func (s *Service) Current() *models.Account {
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// Accounts returns a copy of the cached account list.
func (s *Service) Accounts() []models.Account {
	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// CreateAccount passes through to the store and refreshes the cached
// account list on success.
func (s *Service) CreateAccount(ctx context.Context, username, password string, role models.Role) Result {
	_, err := s.store.CreateAccount(ctx, username, password, role)
	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		return Result{OK: false, Message: "Username already exists."}
	case err != nil:
		s.log.Error(ctx, "failed to create account", "error", err)
		return Result{OK: false, Message: "Unable to add user."}
	}

	s.accounts = s.store.ListAccounts()
	return Result{OK: true, Message: "User added successfully."}
}

// ChangePassword passes through to the store and refreshes the cached
// account list on success.
func (s *Service) ChangePassword(ctx context.Context, id, newPassword string) Result {
	err := s.store.ChangePassword(ctx, id, newPassword)
	switch {
	case errors.Is(err, common.ErrAccountNotFound):
		return Result{OK: false, Message: "User not found."}
	case err != nil:
		s.log.Error(ctx, "failed to change password", "error", err)
		return Result{OK: false, Message: "Unable to update password."}
	}

	s.accounts = s.store.ListAccounts()
	return Result{OK: true, Message: "Password updated successfully."}
}
