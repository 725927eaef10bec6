package usecases

import (
	"context"
	"time"

	"github.com/deskhub/deskhub/internal/domain/asset"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
)

// memoryAssetRepository keeps assets in a map and enforces unique tags.
type memoryAssetRepository struct {
	assets     map[uint]*asset.Asset
	nextID     uint
	history    *memoryHistoryRepository
	ListFunc   func(ctx context.Context, filter asset.AssetFilter) ([]*asset.Asset, int64, error)
	UpdateFunc func(ctx context.Context, a *asset.Asset) error
}

func newMemoryAssetRepository(history *memoryHistoryRepository) *memoryAssetRepository {
	return &memoryAssetRepository{assets: make(map[uint]*asset.Asset), history: history}
}

func (m *memoryAssetRepository) Create(_ context.Context, a *asset.Asset) error {
	for _, existing := range m.assets {
		if existing.Tag() == a.Tag() {
			return errors.NewConflictError("duplicate key value violates unique constraint")
		}
	}
	m.nextID++
	if err := a.SetID(m.nextID); err != nil {
		return err
	}
	m.assets[a.ID()] = a
	return nil
}

func (m *memoryAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	m.assets[a.ID()] = a
	return nil
}

func (m *memoryAssetRepository) Delete(_ context.Context, id uint) error {
	if _, ok := m.assets[id]; !ok {
		return errors.NewNotFoundError("asset not found")
	}
	delete(m.assets, id)
	if m.history != nil {
		m.history.deleteAsset(id)
	}
	return nil
}

func (m *memoryAssetRepository) GetByID(_ context.Context, id uint) (*asset.Asset, error) {
	return m.assets[id], nil
}

func (m *memoryAssetRepository) List(ctx context.Context, filter asset.AssetFilter) ([]*asset.Asset, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	out := make([]*asset.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (m *memoryAssetRepository) ListByHolder(_ context.Context, userID uint) ([]*asset.Asset, error) {
	var out []*asset.Asset
	for _, a := range m.assets {
		if a.IsHeldBy(userID) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryAssetRepository) Count(context.Context) (int64, error) {
	return int64(len(m.assets)), nil
}

type memoryHistoryRepository struct {
	rows   []*asset.AssignmentHistory
	nextID uint
}

func (m *memoryHistoryRepository) Create(_ context.Context, h *asset.AssignmentHistory) error {
	m.nextID++
	h.SetID(m.nextID)
	m.rows = append(m.rows, h)
	return nil
}

func (m *memoryHistoryRepository) CloseOpen(_ context.Context, assetID uint, at time.Time) (int64, error) {
	var closed int64
	for i, h := range m.rows {
		if h.AssetID() == assetID && h.IsOpen() {
			m.rows[i] = asset.ReconstructAssignmentHistory(h.ID(), h.AssetID(), h.UserID(), h.AssignedAt(), &at, h.Notes())
			closed++
		}
	}
	return closed, nil
}

func (m *memoryHistoryRepository) ListByAsset(_ context.Context, assetID uint) ([]*asset.AssignmentHistory, error) {
	var out []*asset.AssignmentHistory
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].AssetID() == assetID {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memoryHistoryRepository) openRows(assetID uint) int {
	n := 0
	for _, h := range m.rows {
		if h.AssetID() == assetID && h.IsOpen() {
			n++
		}
	}
	return n
}

func (m *memoryHistoryRepository) deleteAsset(assetID uint) {
	kept := m.rows[:0]
	for _, h := range m.rows {
		if h.AssetID() != assetID {
			kept = append(kept, h)
		}
	}
	m.rows = kept
}

// mockUserRepository serves a fixed set of profiles.
type mockUserRepository struct {
	users map[uint]*user.User
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(context.Context, *user.User) error { return nil }
func (m *mockUserRepository) Update(context.Context, *user.User) error { return nil }

func (m *mockUserRepository) GetByID(_ context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepository) GetByEmail(context.Context, string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) GetNames(_ context.Context, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			names[id] = u.FullName()
		}
	}
	return names, nil
}

func (m *mockUserRepository) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (m *mockUserRepository) List(context.Context, user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (m *mockUserRepository) ListStaff(context.Context) ([]*user.User, error) { return nil, nil }
func (m *mockUserRepository) Count(context.Context) (int64, error)            { return int64(len(m.users)), nil }

func (m *mockUserRepository) CountByRole(context.Context) (map[authorization.UserRole]int64, error) {
	return nil, nil
}

func newTestUser(id uint, name string, role authorization.UserRole, active bool) *user.User {
	u, err := user.ReconstructUser(user.State{
		ID:       id,
		Email:    name[:1] + "@example.com",
		FullName: name,
		Role:     string(role),
		IsActive: active,
	})
	if err != nil {
		panic(err)
	}
	return u
}
