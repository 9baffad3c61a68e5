// Package store owns the gallery database: every account plus each user's
// anime list, loaded into memory once and written back in full after every
// mutation. There is no partial persistence and no transaction spanning
// operations; the in-memory copy is the source of truth for the lifetime of
// the process.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"animegallery/internal/common"
	"animegallery/internal/logging"
	"animegallery/internal/models"
	"animegallery/internal/storage"
)

const (
	// DatabaseKey is the storage slot holding the current-format database.
	DatabaseKey = "anime-gallery-db"
	// LegacyKey held a bare anime list before accounts existed. It is
	// consumed and removed by the startup migration.
	LegacyKey = "anime-gallery-data"
)

// Store is the process-wide home of the gallery database.
type Store struct {
	storage storage.Storage
	log     logging.Logger
	db      *models.Database
}

// Open loads the database from st, migrating or seeding as needed, and
// returns a ready Store. It never fails on bad or missing data: anything
// unreadable is replaced by a fresh seeded database. The startup sequence:
//
//  1. current-format document present and parsable: adopt it as-is;
//  2. otherwise, legacy bare anime list present and parsable: seed a fresh
//     database, hand the legacy list to the admin account, drop the legacy
//     key;
//  3. otherwise (or on any read/parse error): seed a fresh database with
//     the bundled example catalog.
func Open(ctx context.Context, st storage.Storage, log logging.Logger) *Store {
	s := &Store{storage: st, log: log}
	s.db = s.loadAndInitialize(ctx)
	return s
}

func (s *Store) loadAndInitialize(ctx context.Context) *models.Database {
	raw, err := s.storage.Read(ctx, DatabaseKey)
	if err != nil {
		s.log.Error(ctx, "failed to read database, starting fresh", "error", err)
		db := freshDatabase()
		s.persistDB(ctx, db)
		return db
	}

	if raw != nil {
		var db models.Database
		if err := json.Unmarshal(raw, &db); err != nil {
			s.log.Error(ctx, "stored database unreadable, starting fresh", "error", err)
			fresh := freshDatabase()
			s.persistDB(ctx, fresh)
			return fresh
		}
		if db.AnimeData == nil {
			db.AnimeData = map[string][]models.Anime{}
		}
		return &db
	}

	if db := s.migrateLegacy(ctx); db != nil {
		return db
	}

	s.log.Info(ctx, "no existing data found, initializing a fresh database")
	db := freshDatabase()
	s.persistDB(ctx, db)
	return db
}

// migrateLegacy converts a pre-account bare anime list into the current
// layout. Returns nil when there is nothing to migrate.
func (s *Store) migrateLegacy(ctx context.Context) *models.Database {
	raw, err := s.storage.Read(ctx, LegacyKey)
	if err != nil || raw == nil {
		return nil
	}

	var legacy []models.Anime
	if err := json.Unmarshal(raw, &legacy); err != nil {
		s.log.Error(ctx, "legacy data unreadable, ignoring it", "error", err)
		return nil
	}

	s.log.Info(ctx, "legacy data found, migrating to the account-based layout", "entries", len(legacy))

	db := freshDatabase()
	db.AnimeData[seedAdminUsername] = legacy
	s.persistDB(ctx, db)

	if err := s.storage.Remove(ctx, LegacyKey); err != nil {
		s.log.Error(ctx, "failed to remove legacy data", "error", err)
	}
	return db
}

// persist writes the whole database back to storage. Write failures are
// logged, never surfaced: the in-memory state stays authoritative and the
// unwritten changes are lost when the process ends.
func (s *Store) persist(ctx context.Context) {
	s.persistDB(ctx, s.db)
}

func (s *Store) persistDB(ctx context.Context, db *models.Database) {
	raw, err := json.Marshal(db)
	if err != nil {
		s.log.Error(ctx, "failed to encode database", "error", err)
		return
	}
	if err := s.storage.Write(ctx, DatabaseKey, raw); err != nil {
		s.log.Error(ctx, "failed to save database", "error", err)
	}
}

// Authenticate returns a copy of the account matching the credentials, or
// common.ErrInvalidCredentials. The error never reveals whether the
// username exists.
func (s *Store) Authenticate(username, password string) (*models.Account, error) {
	for i := range s.db.Users {
		u := &s.db.Users[i]
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrInvalidCredentials
}

// ListAccounts returns a copy of all accounts, never the live slice.
func (s *Store) ListAccounts() []models.Account {
	out := make([]models.Account, len(s.db.Users))
	copy(out, s.db.Users)
	return out
}

// CreateAccount registers a new account with an empty anime list. Usernames
// are unique with case-sensitive comparison; a duplicate attempt returns
// common.ErrDuplicateUsername and leaves the database untouched.
func (s *Store) CreateAccount(ctx context.Context, username, password string, role models.Role) (*models.Account, error) {
	for _, u := range s.db.Users {
		if u.Username == username {
			return nil, common.ErrDuplicateUsername
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	acc := models.Account{
		ID:           "user-" + uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	s.db.Users = append(s.db.Users, acc)
	s.db.AnimeData[username] = []models.Anime{}
	s.persist(ctx)

	s.log.Info(ctx, "account created", "username", username, "role", role)
	cp := acc
	return &cp, nil
}

// ChangePassword replaces the password hash of the account with the given
// id. Unknown ids return common.ErrAccountNotFound.
func (s *Store) ChangePassword(ctx context.Context, id, newPassword string) error {
	for i := range s.db.Users {
		if s.db.Users[i].ID != id {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		s.db.Users[i].PasswordHash = string(hash)
		s.persist(ctx)
		return nil
	}
	return common.ErrAccountNotFound
}

// AnimeFor returns a copy of the user's anime list. Unknown usernames get
// an empty list, never an error.
func (s *Store) AnimeFor(username string) []models.Anime {
	list := s.db.AnimeData[username]
	out := make([]models.Anime, len(list))
	copy(out, list)
	return out
}

// SetAnimeFor replaces the user's whole anime list. Writes for usernames
// without an account are refused silently (logged, nil error) so that no
// orphaned mapping key can be created.
func (s *Store) SetAnimeFor(ctx context.Context, username string, list []models.Anime) error {
	known := false
	for _, u := range s.db.Users {
		if u.Username == username {
			known = true
			break
		}
	}
	if !known {
		s.log.Warn(ctx, "refusing to save anime for non-existent user", "username", username)
		return nil
	}

	cp := make([]models.Anime, len(list))
	copy(cp, list)
	s.db.AnimeData[username] = cp
	s.persist(ctx)
	return nil
}
