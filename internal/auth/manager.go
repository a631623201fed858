// Package auth is the local authentication authority of the panel. It
// validates credentials and registration input, issues time-bounded
// sessions, and tracks failed login attempts. Sessions are local proofs
// of login, not verifiable tokens, and passwords are compared in
// plaintext; see the accounts package for why.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LIZZY274/hotspot-panel/internal/accounts"
	"github.com/LIZZY274/hotspot-panel/internal/kvstore"
	"github.com/LIZZY274/hotspot-panel/internal/logging"
	"github.com/LIZZY274/hotspot-panel/internal/models"
)

// DefaultLoginDelay imitates the round trip a real authentication
// backend would cost. It also equalizes the observable latency of
// unknown-user and wrong-password failures.
const DefaultLoginDelay = 1200 * time.Millisecond

// RegisterInput is the raw registration form payload.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Confirm   string
	FirstName string
	LastName  string
}

// Manager owns the (at most one) active session of this panel
// instance.
type Manager struct {
	repo *accounts.Repository
	kv   kvstore.Store
	log  logging.Logger

	// LoginDelay is applied after shape validation and before the
	// account lookup, on success and failure alike.
	LoginDelay time.Duration

	mu      sync.Mutex
	session *models.Session
	now     func() time.Time
}

func NewManager(repo *accounts.Repository, kv kvstore.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop{}
	}
	return &Manager{
		repo:       repo,
		kv:         kv,
		log:        log,
		LoginDelay: DefaultLoginDelay,
		now:        time.Now,
	}
}

// Restore loads a previously persisted session, if any. Expired
// sessions are discarded and their slot removed, so a restart never
// resurrects a stale login.
func (m *Manager) Restore(ctx context.Context) error {
	raw, err := m.kv.Get(ctx, kvstore.KeyCurrentSession)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		m.log.Warn(ctx, "session slot unreadable, discarding", "err", err)
		return m.kv.Delete(ctx, kvstore.KeyCurrentSession)
	}
	if s.Expired(m.now()) {
		m.log.Info(ctx, "persisted session expired", "username", s.Username)
		return m.kv.Delete(ctx, kvstore.KeyCurrentSession)
	}

	m.mu.Lock()
	m.session = &s
	m.mu.Unlock()
	m.log.Info(ctx, "session restored", "username", s.Username, "role", s.Role)
	return nil
}

// Login authenticates against the account store and issues a new
// session. The failure path is deliberately indistinguishable for
// unknown usernames and wrong passwords, in latency and in message.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if verr := validateLogin(username, password); verr != nil {
		return nil, verr
	}

	m.sleep(ctx)

	all, err := m.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}

	now := m.now()
	for i := range all {
		a := &all[i]
		if a.Username != username || a.Password != password || !a.IsActive {
			continue
		}

		a.LastLogin = &now
		if err := m.repo.Update(ctx, *a); err != nil {
			return nil, fmt.Errorf("updating last login: %w", err)
		}
		return m.issue(ctx, a)
	}

	if err := m.recordFailure(ctx, username, now); err != nil {
		m.log.Warn(ctx, "recording failed attempt", "err", err)
	}
	return nil, ErrInvalidCredentials
}

// Register creates an account with the user role and logs it in
// immediately.
func (m *Manager) Register(ctx context.Context, in RegisterInput) (*models.Session, error) {
	if verr := validateRegistration(in); verr != nil {
		return nil, verr
	}

	m.sleep(ctx)

	now := m.now()
	account, err := m.repo.Insert(ctx, models.Account{
		Username:      in.Username,
		Email:         in.Email,
		Password:      in.Password,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Role:          models.RoleUser,
		CreatedAt:     now,
		LastLogin:     &now,
		IsActive:      true,
		EmailVerified: false,
	})
	if err != nil {
		if errors.Is(err, accounts.ErrDuplicate) {
			return nil, ErrDuplicateAccount
		}
		return nil, fmt.Errorf("inserting account: %w", err)
	}

	return m.issue(ctx, account)
}

// Logout destroys the current session and removes every per-user slot
// from storage. It never fails; storage errors are logged and
// swallowed.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()

	for _, key := range []string{
		kvstore.KeyCurrentSession,
		kvstore.KeyPreferences,
		kvstore.KeyAnalysisCache,
	} {
		if err := m.kv.Delete(ctx, key); err != nil {
			m.log.Warn(ctx, "clearing slot on logout", "key", key, "err", err)
		}
	}
}

// IsAuthenticated reports whether an unexpired session exists. Expiry
// is lazy: it is detected here, on access, and drops the session.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return false
	}
	if m.session.Expired(m.now()) {
		m.session = nil
		return false
	}
	return true
}

// CurrentSession returns a copy of the active session, or nil.
func (m *Manager) CurrentSession() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil || m.session.Expired(m.now()) {
		return nil
	}
	s := *m.session
	return &s
}

// ChangePassword replaces the logged-in account's password after
// verifying the current one.
func (m *Manager) ChangePassword(ctx context.Context, current, next string) error {
	s := m.CurrentSession()
	if s == nil {
		return ErrNotAuthenticated
	}

	account, err := m.repo.FindByUsername(ctx, s.Username)
	if err != nil {
		return fmt.Errorf("loading account: %w", err)
	}
	if account.Password != current {
		return ErrWrongPassword
	}
	if len(next) < 6 {
		return ErrWeakPassword
	}

	now := m.now()
	account.Password = next
	account.PasswordChangedAt = &now
	if err := m.repo.Update(ctx, *account); err != nil {
		return fmt.Errorf("updating account: %w", err)
	}
	m.log.Info(ctx, "password changed", "username", account.Username)
	return nil
}

// FailedAttempts returns the recorded failure counter for a username.
func (m *Manager) FailedAttempts(ctx context.Context, username string) (models.FailedAttempt, error) {
	attempts, err := m.loadFailures(ctx)
	if err != nil {
		return models.FailedAttempt{}, err
	}
	return attempts[username], nil
}

func (m *Manager) issue(ctx context.Context, a *models.Account) (*models.Session, error) {
	now := m.now()
	s := &models.Session{
		AccountID:   a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Role:        a.Role,
		IssuedAt:    now,
		TokenExpiry: now.Add(models.SessionTTL),
		SessionID:   uuid.NewString(),
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	if err := m.kv.Set(ctx, kvstore.KeyCurrentSession, raw); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
	m.log.Info(ctx, "session issued", "username", s.Username, "role", s.Role)
	return s, nil
}

func (m *Manager) recordFailure(ctx context.Context, username string, at time.Time) error {
	return m.kv.Update(ctx, func(ctx context.Context, s kvstore.Store) error {
		attempts, err := loadFailuresFrom(ctx, s)
		if err != nil {
			return err
		}
		rec := attempts[username]
		rec.Count++
		rec.LastAttempt = at
		attempts[username] = rec

		raw, err := json.Marshal(attempts)
		if err != nil {
			return fmt.Errorf("encoding failed attempts: %w", err)
		}
		return s.Set(ctx, kvstore.KeyFailedAttempts, raw)
	})
}

func (m *Manager) loadFailures(ctx context.Context) (map[string]models.FailedAttempt, error) {
	return loadFailuresFrom(ctx, m.kv)
}

func loadFailuresFrom(ctx context.Context, s kvstore.Store) (map[string]models.FailedAttempt, error) {
	raw, err := s.Get(ctx, kvstore.KeyFailedAttempts)
	if err != nil {
		return nil, fmt.Errorf("loading failed attempts: %w", err)
	}
	attempts := map[string]models.FailedAttempt{}
	if raw == nil {
		return attempts, nil
	}
	if err := json.Unmarshal(raw, &attempts); err != nil {
		// Unreadable counters are not worth failing a login over.
		return map[string]models.FailedAttempt{}, nil
	}
	return attempts, nil
}

func (m *Manager) sleep(ctx context.Context) {
	if m.LoginDelay <= 0 {
		return
	}
	t := time.NewTimer(m.LoginDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
