package usecases

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	apperrors "github.com/deskhub/deskhub/internal/shared/errors"
)

type memoryUserRepository struct {
	users      map[uint]*user.User
	nextID     uint
	UpdateFunc func(ctx context.Context, u *user.User) error
	lastFilter user.ListFilter
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[uint]*user.User)}
}

func (m *memoryUserRepository) Create(_ context.Context, u *user.User) error {
	for _, existing := range m.users {
		if existing.Email() == u.Email() {
			return apperrors.NewConflictError("duplicate key value violates unique constraint")
		}
	}
	m.nextID++
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[u.ID()] = u
	return nil
}

func (m *memoryUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	m.users[u.ID()] = u
	return nil
}

func (m *memoryUserRepository) GetByID(_ context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
}

func (m *memoryUserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepository) GetNames(_ context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string)
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out[id] = u.FullName()
		}
	}
	return out, nil
}

func (m *memoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := m.GetByEmail(ctx, email)
	return u != nil, nil
}

func (m *memoryUserRepository) List(_ context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	m.lastFilter = filter
	var out []*user.User
	for _, u := range m.users {
		if filter.Role == nil || u.Role() == *filter.Role {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memoryUserRepository) ListStaff(context.Context) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.users {
		if u.CanWorkTickets() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memoryUserRepository) Count(context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memoryUserRepository) CountByRole(context.Context) (map[authorization.UserRole]int64, error) {
	return nil, nil
}

// plainHasher prefixes passwords so tests can read them back.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubJWT struct{}

func (stubJWT) Generate(userID uint, role authorization.UserRole) (*TokenPair, error) {
	return &TokenPair{AccessToken: "token-" + uintToString(userID) + "-" + role.String(), ExpiresIn: 3600}, nil
}

type memoryObjectStore struct {
	objects map[string][]byte
	deleted []string
}

func newMemoryObjectStore() *memoryObjectStore {
	return &memoryObjectStore{objects: make(map[string][]byte)}
}

func (s *memoryObjectStore) Put(_ context.Context, key, _ string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.objects[key] = data
	return "/uploads/" + key, nil
}

func (s *memoryObjectStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *memoryObjectStore) KeyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, "/uploads/") {
		return "", false
	}
	return strings.TrimPrefix(url, "/uploads/"), true
}

type issuedReset struct {
	userID      uint
	fingerprint string
}

// memoryResetTokens hands out opaque tokens and remembers what each one
// was issued for.
type memoryResetTokens struct {
	issued map[string]issuedReset
	ttls   []time.Duration
}

func newMemoryResetTokens() *memoryResetTokens {
	return &memoryResetTokens{issued: make(map[string]issuedReset)}
}

func (m *memoryResetTokens) GenerateResetToken(userID uint, fingerprint string, ttl time.Duration) (string, error) {
	token := "reset-" + uintToString(uint(len(m.issued)+1))
	m.issued[token] = issuedReset{userID: userID, fingerprint: fingerprint}
	m.ttls = append(m.ttls, ttl)
	return token, nil
}

func (m *memoryResetTokens) VerifyResetToken(token string) (uint, string, error) {
	got, ok := m.issued[token]
	if !ok {
		return 0, "", errors.New("token is expired")
	}
	return got.userID, got.fingerprint, nil
}

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	disabled bool
	sendErr  error
	sent     []sentMail
}

func (m *recordingMailer) IsEnabled() bool { return !m.disabled }

func (m *recordingMailer) Send(to, subject, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
