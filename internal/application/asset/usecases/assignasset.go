package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/deskhub/deskhub/internal/application/asset/dto"
	"github.com/deskhub/deskhub/internal/application/common"
	"github.com/deskhub/deskhub/internal/application/permission"
	"github.com/deskhub/deskhub/internal/domain/asset"
	permvo "github.com/deskhub/deskhub/internal/domain/permission/valueobjects"
	"github.com/deskhub/deskhub/internal/domain/user"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

type AssignAssetCommand struct {
	Principal authorization.Principal
	AssetID   uint
	UserID    uint
	Notes     string
}

type UnassignAssetCommand struct {
	Principal authorization.Principal
	AssetID   uint
}

type AssignAssetExecutor interface {
	Execute(ctx context.Context, cmd AssignAssetCommand) (*dto.AssetDTO, error)
	Unassign(ctx context.Context, cmd UnassignAssetCommand) (*dto.AssetDTO, error)
}

// AssignAssetUseCase pairs every holder change with its history row in a
// single transaction.
type AssignAssetUseCase struct {
	assetRepo   asset.AssetRepository
	historyRepo asset.HistoryRepository
	userRepo    user.Repository
	tx          common.TransactionRunner
	permissions permission.Checker
	notifier    common.Notifier
	cache       common.CacheInvalidator
	logger      logger.Interface
	now         func() time.Time
}

func NewAssignAssetUseCase(
	assetRepo asset.AssetRepository,
	historyRepo asset.HistoryRepository,
	userRepo user.Repository,
	tx common.TransactionRunner,
	permissions permission.Checker,
	notifier common.Notifier,
	cache common.CacheInvalidator,
	logger logger.Interface,
) *AssignAssetUseCase {
	return &AssignAssetUseCase{
		assetRepo:   assetRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		tx:          tx,
		permissions: permissions,
		notifier:    notifier,
		cache:       cache,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (uc *AssignAssetUseCase) Execute(ctx context.Context, cmd AssignAssetCommand) (*dto.AssetDTO, error) {
	uc.logger.Infow("executing assign asset use case",
		"asset_id", cmd.AssetID,
		"user_id", cmd.UserID,
		"actor_id", cmd.Principal.UserID,
	)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceAsset, permvo.ActionManage); err != nil {
		return nil, err
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user is required")
	}

	holder, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user", "error", err, "user_id", cmd.UserID)
		return nil, errors.NewInternalError("failed to assign asset")
	}
	if holder == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	if !holder.IsActive() {
		return nil, errors.NewValidationError("Assets can only be assigned to active users.")
	}

	var assigned *asset.Asset
	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := loadAsset(txCtx, uc.assetRepo, uc.logger, cmd.AssetID)
		if err != nil {
			return err
		}
		if err := a.AssignTo(cmd.UserID); err != nil {
			return err
		}

		at := uc.now()
		if _, err := uc.historyRepo.CloseOpen(txCtx, a.ID(), at); err != nil {
			uc.logger.Errorw("failed to close open history row", "error", err, "asset_id", a.ID())
			return errors.NewInternalError("failed to assign asset")
		}
		if err := uc.assetRepo.Update(txCtx, a); err != nil {
			uc.logger.Errorw("failed to update asset holder", "error", err, "asset_id", a.ID())
			return errors.NewInternalError("failed to assign asset")
		}
		entry, err := asset.NewAssignmentHistory(a.ID(), cmd.UserID, at, cmd.Notes)
		if err != nil {
			return err
		}
		if err := uc.historyRepo.Create(txCtx, entry); err != nil {
			uc.logger.Errorw("failed to append history row", "error", err, "asset_id", a.ID())
			return errors.NewInternalError("failed to assign asset")
		}
		assigned = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.notifier.Notify(ctx, common.NotificationRequest{
		UserID:  cmd.UserID,
		Subject: "Asset assigned to you",
		Message: fmt.Sprintf("Asset %s (%s) has been assigned to you.", assigned.Tag(), assigned.Type()),
		LinkTo:  "/assets/mine",
	})

	uc.logger.Infow("asset assigned successfully", "asset_id", assigned.ID(), "user_id", cmd.UserID)
	return dto.ToAssetDTO(assigned, map[uint]string{holder.ID(): holder.FullName()}), nil
}

func (uc *AssignAssetUseCase) Unassign(ctx context.Context, cmd UnassignAssetCommand) (*dto.AssetDTO, error) {
	uc.logger.Infow("executing unassign asset use case", "asset_id", cmd.AssetID, "actor_id", cmd.Principal.UserID)

	if err := uc.permissions.Require(ctx, cmd.Principal, permvo.ResourceAsset, permvo.ActionManage); err != nil {
		return nil, err
	}

	var released *asset.Asset
	var previous uint
	err := uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		a, err := loadAsset(txCtx, uc.assetRepo, uc.logger, cmd.AssetID)
		if err != nil {
			return err
		}
		previous, err = a.Unassign()
		if err != nil {
			return err
		}
		if err := uc.assetRepo.Update(txCtx, a); err != nil {
			uc.logger.Errorw("failed to clear asset holder", "error", err, "asset_id", a.ID())
			return errors.NewInternalError("failed to unassign asset")
		}
		closed, err := uc.historyRepo.CloseOpen(txCtx, a.ID(), uc.now())
		if err != nil {
			uc.logger.Errorw("failed to close history row", "error", err, "asset_id", a.ID())
			return errors.NewInternalError("failed to unassign asset")
		}
		if closed == 0 {
			uc.logger.Warnw("asset had a holder but no open history row", "asset_id", a.ID(), "user_id", previous)
		}
		released = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, invalidatedScopes...)

	uc.logger.Infow("asset unassigned successfully", "asset_id", released.ID(), "previous_user_id", previous)
	return dto.ToAssetDTO(released, nil), nil
}
