// Package auth owns the account directory and the single active session.
package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/eaportal/bucketlist/internal/clock"
	"github.com/eaportal/bucketlist/internal/common"
	"github.com/eaportal/bucketlist/internal/logging"
	"github.com/eaportal/bucketlist/internal/models"
	"github.com/eaportal/bucketlist/internal/storage"
)

// The developer account seeded on every fresh storage. It is privileged
// only in that the UI layer shows it every user's goals and lets it
// impersonate; the managers themselves enforce nothing.
const (
	DeveloperEmail    = "laura.zaguette@eaportal.org"
	DeveloperName     = "Desenvolvedora"
	developerPassword = "joaomylove"
)

// Manager handles registration, login, logout and session resolution.
// The loaded user slice is the source of truth while the process runs;
// every mutation rewrites the whole persisted collection before returning.
// Not safe for concurrent use.
type Manager struct {
	store storage.Store
	log   logging.Logger
	seq   *clock.Sequence
	users []models.User
}

// NewManager loads the persisted accounts and guarantees the developer
// account exists, seeding and persisting it on first run.
func NewManager(ctx context.Context, store storage.Store, log logging.Logger, clk clock.Clock) (*Manager, error) {
	m := &Manager{
		store: store,
		log:   log.With("component", "auth"),
		seq:   clock.NewSequence(clk),
	}

	data, err := store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	m.users, err = models.DecodeUsers(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	if err := m.ensureDeveloper(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) ensureDeveloper(ctx context.Context) error {
	for _, u := range m.users {
		if u.Email == DeveloperEmail {
			return nil
		}
	}

	dev := models.User{
		ID:           m.seq.Next(),
		Name:         DeveloperName,
		Email:        DeveloperEmail,
		PasswordHash: HashPassword(developerPassword),
		IsDeveloper:  true,
	}
	m.users = append(m.users, dev)
	if err := m.saveUsers(ctx); err != nil {
		m.users = m.users[:len(m.users)-1]
		return err
	}
	m.log.Info(ctx, "seeded developer account", "id", dev.ID)
	return nil
}

// Register creates an account, persists the user collection and installs a
// session for the new user. Fails with common.ErrorDuplicateEmail when the
// email is taken (byte-exact comparison) and common.ErrorValidation on an
// empty email or password.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("register: %w", common.ErrorValidation)
	}
	for _, u := range m.users {
		if u.Email == email {
			return nil, fmt.Errorf("register %s: %w", email, common.ErrorDuplicateEmail)
		}
	}

	user := models.User{
		ID:           m.seq.Next(),
		Name:         name,
		Email:        email,
		PasswordHash: HashPassword(password),
	}
	m.users = append(m.users, user)
	if err := m.saveUsers(ctx); err != nil {
		m.users = m.users[:len(m.users)-1]
		return nil, err
	}

	if err := m.SetSession(ctx, models.Session{UserID: user.ID}); err != nil {
		return nil, err
	}
	m.log.Info(ctx, "user registered", "id", user.ID)
	return &user, nil
}

// Login checks the credentials and installs a session for the matched
// user. A wrong email and a wrong password are indistinguishable: both
// fail with common.ErrorInvalidCredentials.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.User, error) {
	hash := []byte(HashPassword(password))

	for _, u := range m.users {
		if u.Email == email && subtle.ConstantTimeCompare([]byte(u.PasswordHash), hash) == 1 {
			if err := m.SetSession(ctx, models.Session{UserID: u.ID}); err != nil {
				return nil, err
			}
			m.log.Info(ctx, "user logged in", "id", u.ID)
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("login %s: %w", email, common.ErrorInvalidCredentials)
}

// Logout clears the session. Logging out with no active session is fine.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser resolves the active session to a user. It returns (nil, nil)
// when no session is installed or when the session references an unknown
// user id (a stale impersonation, for example).
func (m *Manager) CurrentUser(ctx context.Context) (*models.User, error) {
	data, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	s := models.SessionFromToken(string(data))
	if s == nil {
		return nil, nil
	}
	for _, u := range m.users {
		if u.ID == s.UserID {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// AllUsers returns a copy of every account. Authorization is the caller's
// responsibility: the UI layer gates this behind the developer flag, the
// manager does not.
func (m *Manager) AllUsers(ctx context.Context) ([]models.User, error) {
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// SetSession installs an arbitrary session without any credential check.
// This is the impersonation capability used by the developer view; it is a
// UI-gated trust boundary, not a security boundary.
func (m *Manager) SetSession(ctx context.Context, s models.Session) error {
	token, err := s.Token()
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeySession, []byte(token)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (m *Manager) saveUsers(ctx context.Context) error {
	data, err := models.EncodeUsers(m.users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyUsers, data); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
