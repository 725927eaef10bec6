package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/deskhub/deskhub/internal/application/dashboard/dto"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/asset"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/biztime"
	"github.com/deskhub/deskhub/internal/shared/constants"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

const noResolutionData = "N/A"

type AdminStatsExecutor interface {
	Execute(ctx context.Context, principal authorization.Principal) (*dto.AdminStatsDTO, error)
}

type AdminStatsUseCase struct {
	ticketRepo  ticket.TicketRepository
	assetRepo   asset.AssetRepository
	userRepo    user.Repository
	permissions permission.Checker
	logger      logger.Interface
	now         func() time.Time
}

func NewAdminStatsUseCase(
	ticketRepo ticket.TicketRepository,
	assetRepo asset.AssetRepository,
	userRepo user.Repository,
	permissions permission.Checker,
	logger logger.Interface,
) *AdminStatsUseCase {
	return &AdminStatsUseCase{
		ticketRepo:  ticketRepo,
		assetRepo:   assetRepo,
		userRepo:    userRepo,
		permissions: permissions,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *AdminStatsUseCase) Execute(ctx context.Context, principal authorization.Principal) (*dto.AdminStatsDTO, error) {
	if err := uc.permissions.Require(ctx, principal, permvo.ResourceDashboard, permvo.ActionStats); err != nil {
		return nil, err
	}

	fail := func(what string, err error) (*dto.AdminStatsDTO, error) {
		uc.logger.Errorw("failed to load dashboard "+what, "error", err)
		return nil, errors.NewInternalError("failed to load dashboard statistics")
	}

	totalUsers, err := uc.userRepo.Count(ctx)
	if err != nil {
		return fail("user count", err)
	}
	totalAssets, err := uc.assetRepo.Count(ctx)
	if err != nil {
		return fail("asset count", err)
	}
	byStatus, err := uc.ticketRepo.CountByStatus(ctx, ticket.StatusCountFilter{})
	if err != nil {
		return fail("ticket counts", err)
	}
	avgResolution, resolved, err := uc.ticketRepo.AverageResolution(ctx)
	if err != nil {
		return fail("resolution stats", err)
	}
	keys, since := biztime.LastNDays(uc.now(), constants.DailyTicketWindowDays)
	created, err := uc.ticketRepo.CreatedSince(ctx, since)
	if err != nil {
		return fail("daily ticket counts", err)
	}
	byRole, err := uc.userRepo.CountByRole(ctx)
	if err != nil {
		return fail("role counts", err)
	}

	var open int64
	for status, n := range byStatus {
		if !status.IsFinished() {
			open += n
		}
	}

	return &dto.AdminStatsDTO{
		TotalUsers:        totalUsers,
		TotalAssets:       totalAssets,
		OpenTickets:       open,
		AvgResolutionTime: FormatAverage(avgResolution, resolved),
		DailyTicketCounts: bucketByDay(keys, created),
		UserRoleCounts:    roleCounts(byRole),
	}, nil
}

// FormatAverage renders avg as a rounded duration such as "3 hours", or N/A
// when nothing has been resolved.
func FormatAverage(avg time.Duration, count int64) string {
	if count <= 0 {
		return noResolutionData
	}
	if avg < time.Minute {
		return "less than a minute"
	}
	epoch := time.Unix(0, 0)
	return strings.TrimSpace(humanize.RelTime(epoch, epoch.Add(avg), "", ""))
}

func bucketByDay(keys []string, created []time.Time) []dto.DailyCount {
	counts := make(map[string]int64, len(keys))
	for _, t := range created {
		counts[biztime.DateKey(t)]++
	}
	out := make([]dto.DailyCount, 0, len(keys))
	for _, k := range keys {
		out = append(out, dto.DailyCount{Date: k, Count: counts[k]})
	}
	return out
}

func roleCounts(byRole map[authorization.UserRole]int64) []dto.RoleCount {
	out := make([]dto.RoleCount, 0, len(authorization.AllRoles))
	for _, role := range authorization.AllRoles {
		out = append(out, dto.RoleCount{Role: role.String(), Count: byRole[role]})
	}
	return out
}

func statusCounts(byStatus map[vo.TicketStatus]int64) ([]dto.StatusCount, int64) {
	out := make([]dto.StatusCount, 0, len(vo.AllStatuses))
	var total int64
	for _, s := range vo.AllStatuses {
		out = append(out, dto.StatusCount{Status: s.String(), Count: byStatus[s]})
		total += byStatus[s]
	}
	return out, total
}
