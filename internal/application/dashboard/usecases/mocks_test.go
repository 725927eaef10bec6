package usecases

import (
	"context"
	"time"

	"github.com/deskhub/deskhub/internal/domain/asset"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
)

type stubTicketRepository struct {
	ticket.TicketRepository

	CountByStatusFunc func(filter ticket.StatusCountFilter) (map[vo.TicketStatus]int64, error)
	created           []time.Time
	createdErr        error
	resolvedAvg       time.Duration
	resolvedCount     int64
	sinceSeen         time.Time
}

func (s *stubTicketRepository) CountByStatus(_ context.Context, filter ticket.StatusCountFilter) (map[vo.TicketStatus]int64, error) {
	if s.CountByStatusFunc != nil {
		return s.CountByStatusFunc(filter)
	}
	return map[vo.TicketStatus]int64{}, nil
}

func (s *stubTicketRepository) CreatedSince(_ context.Context, since time.Time) ([]time.Time, error) {
	s.sinceSeen = since
	return s.created, s.createdErr
}

func (s *stubTicketRepository) AverageResolution(context.Context) (time.Duration, int64, error) {
	return s.resolvedAvg, s.resolvedCount, nil
}

type stubAssetRepository struct {
	asset.AssetRepository

	count int64
	held  map[uint]int
}

func (s *stubAssetRepository) Count(context.Context) (int64, error) {
	return s.count, nil
}

func (s *stubAssetRepository) ListByHolder(_ context.Context, userID uint) ([]*asset.Asset, error) {
	return make([]*asset.Asset, s.held[userID]), nil
}

type stubUserRepository struct {
	user.Repository

	count  int64
	byRole map[authorization.UserRole]int64
}

func (s *stubUserRepository) Count(context.Context) (int64, error) {
	return s.count, nil
}

func (s *stubUserRepository) CountByRole(context.Context) (map[authorization.UserRole]int64, error) {
	return s.byRole, nil
}
