// Package accounts implements the panel's credential store: a repository
// of dashboard accounts persisted as one serialized collection in the
// key-value namespace. Pure data access, no networking.
package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LIZZY274/hotspot-panel/internal/kvstore"
	"github.com/LIZZY274/hotspot-panel/internal/logging"
	"github.com/LIZZY274/hotspot-panel/internal/models"
)

var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("account already exists")

	// ErrCorruptPayload marks an accounts slot that cannot be parsed.
	// The repository recovers by discarding the slot and re-seeding, so
	// callers normally never observe it.
	ErrCorruptPayload = errors.New("corrupt accounts payload")
)

// Repository stores accounts in the kvstore `accounts` slot using
// read-modify-write on every mutation. Usernames are unique
// case-sensitively, emails case-insensitively.
type Repository struct {
	kv  kvstore.Store
	log logging.Logger
	now func() time.Time
}

func NewRepository(kv kvstore.Store, log logging.Logger) *Repository {
	if log == nil {
		log = logging.Nop{}
	}
	return &Repository{kv: kv, log: log, now: time.Now}
}

// List returns every stored account, seeding the demo accounts on first
// use and recovering from a corrupt slot by re-seeding.
func (r *Repository) List(ctx context.Context) ([]models.Account, error) {
	return r.loadAll(ctx, r.kv)
}

// FindByUsername looks an account up by exact username.
func (r *Repository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	all, err := r.loadAll(ctx, r.kv)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Username == username {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindByEmail looks an account up by email, ignoring case.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	all, err := r.loadAll(ctx, r.kv)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if strings.EqualFold(all[i].Email, email) {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

// Insert appends a new account. The account ID is assigned here when
// empty. Returns ErrDuplicate when the username (any case) or email is
// already taken.
func (r *Repository) Insert(ctx context.Context, account models.Account) (*models.Account, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	var inserted *models.Account
	err := r.kv.Update(ctx, func(ctx context.Context, s kvstore.Store) error {
		all, err := r.loadAll(ctx, s)
		if err != nil {
			return err
		}
		for i := range all {
			if strings.EqualFold(all[i].Username, account.Username) || strings.EqualFold(all[i].Email, account.Email) {
				return ErrDuplicate
			}
		}
		all = append(all, account)
		if err := r.saveAll(ctx, s, all); err != nil {
			return err
		}
		inserted = &account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inserted, nil
}

// Update replaces the stored account with the same ID.
func (r *Repository) Update(ctx context.Context, account models.Account) error {
	return r.kv.Update(ctx, func(ctx context.Context, s kvstore.Store) error {
		all, err := r.loadAll(ctx, s)
		if err != nil {
			return err
		}
		for i := range all {
			if all[i].ID == account.ID {
				all[i] = account
				return r.saveAll(ctx, s, all)
			}
		}
		return ErrNotFound
	})
}

func (r *Repository) loadAll(ctx context.Context, s kvstore.Store) ([]models.Account, error) {
	raw, err := s.Get(ctx, kvstore.KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	if raw == nil {
		return r.reseed(ctx, s)
	}

	var all []models.Account
	if err := json.Unmarshal(raw, &all); err != nil {
		// Recovery policy for a corrupt slot: discard and re-seed.
		r.log.Warn(ctx, "accounts slot unreadable, re-seeding", "err", fmt.Errorf("%w: %v", ErrCorruptPayload, err))
		return r.reseed(ctx, s)
	}
	if len(all) == 0 {
		return r.reseed(ctx, s)
	}
	return all, nil
}

func (r *Repository) saveAll(ctx context.Context, s kvstore.Store, all []models.Account) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	return s.Set(ctx, kvstore.KeyAccounts, raw)
}

func (r *Repository) reseed(ctx context.Context, s kvstore.Store) ([]models.Account, error) {
	seeded := demoAccounts(r.now())
	if err := r.saveAll(ctx, s, seeded); err != nil {
		return nil, err
	}
	r.log.Info(ctx, "seeded demo accounts", "count", len(seeded))
	return seeded, nil
}

// demoAccounts are created on first-ever initialization so the panel is
// usable before anyone registers.
func demoAccounts(now time.Time) []models.Account {
	mk := func(username, email, password string, role models.Role) models.Account {
		return models.Account{
			ID:        uuid.NewString(),
			Username:  username,
			Email:     email,
			Password:  password,
			Role:      role,
			CreatedAt: now,
			IsActive:  true,
		}
	}
	return []models.Account{
		mk("admin", "admin@mikrotik.com", "admin123", models.RoleAdmin),
		mk("user", "user@mikrotik.com", "user123", models.RoleUser),
		mk("guest", "guest@mikrotik.com", "guest123", models.RoleGuest),
	}
}
