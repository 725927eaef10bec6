package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"github.com/deskhub/deskhub/internal/application/user/helpers"
	"github.com/deskhub/deskhub/internal/domain/user"
	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

const invalidResetToken = "Invalid or expired reset link. Please request a new one."

type RequestPasswordResetCommand struct {
	Email string
}

type ResetPasswordCommand struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

type PasswordResetExecutor interface {
	RequestReset(ctx context.Context, cmd RequestPasswordResetCommand) error
	Reset(ctx context.Context, cmd ResetPasswordCommand) error
}

// PasswordResetUseCase mails a reset link and applies the new password.
// RequestReset answers the same way whether or not the address belongs to
// an account.
type PasswordResetUseCase struct {
	userRepo   user.Repository
	authHelper *helpers.AuthHelper
	tokens     ResetTokenService
	email      EmailSender
	resetURL   string
	ttl        time.Duration
	logger     logger.Interface
}

func NewPasswordResetUseCase(
	userRepo user.Repository,
	authHelper *helpers.AuthHelper,
	tokens ResetTokenService,
	email EmailSender,
	resetURL string,
	ttl time.Duration,
	logger logger.Interface,
) *PasswordResetUseCase {
	return &PasswordResetUseCase{
		userRepo:   userRepo,
		authHelper: authHelper,
		tokens:     tokens,
		email:      email,
		resetURL:   resetURL,
		ttl:        ttl,
		logger:     logger,
	}
}

func (uc *PasswordResetUseCase) RequestReset(ctx context.Context, cmd RequestPasswordResetCommand) error {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return errors.NewValidationError("Please provide your email address.")
	}

	u, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to look up user for password reset", "error", err)
		return nil
	}
	if u == nil || !u.IsActive() {
		uc.logger.Infow("password reset requested for unknown or inactive account")
		return nil
	}
	if uc.email == nil || !uc.email.IsEnabled() {
		uc.logger.Warnw("password reset requested but email delivery is disabled", "user_id", u.ID())
		return nil
	}

	token, err := uc.tokens.GenerateResetToken(u.ID(), passwordFingerprint(u.PasswordHash()), uc.ttl)
	if err != nil {
		uc.logger.Errorw("failed to issue reset token", "error", err, "user_id", u.ID())
		return nil
	}

	body := fmt.Sprintf(
		"Hello %s,\n\nUse the link below to choose a new DeskHub password. It expires in %d minutes.\n\n%s\n\nIf you did not ask for this, you can ignore this email.",
		u.FullName(), int(uc.ttl/time.Minute), uc.resetLink(token),
	)
	if err := uc.email.Send(u.Email().String(), "Reset your DeskHub password", body); err != nil {
		uc.logger.Warnw("failed to send password reset email", "error", err, "user_id", u.ID())
		return nil
	}

	uc.logger.Infow("password reset link sent", "user_id", u.ID())
	return nil
}

func (uc *PasswordResetUseCase) Reset(ctx context.Context, cmd ResetPasswordCommand) error {
	if cmd.ConfirmPassword != "" && cmd.ConfirmPassword != cmd.NewPassword {
		return errors.NewValidationError("Passwords do not match.")
	}

	userID, fingerprint, err := uc.tokens.VerifyResetToken(cmd.Token)
	if err != nil {
		uc.logger.Warnw("rejected password reset token", "error", err)
		return errors.NewValidationError(invalidResetToken)
	}

	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load user for password reset", "error", err, "user_id", userID)
		return errors.NewInternalError("failed to reset password")
	}
	// A used token no longer matches: the password hash it was bound to is gone.
	if u == nil || !u.IsActive() || passwordFingerprint(u.PasswordHash()) != fingerprint {
		return errors.NewValidationError(invalidResetToken)
	}

	hash, err := uc.authHelper.HashNewPassword(cmd.NewPassword)
	if err != nil {
		return err
	}
	u.SetPasswordHash(hash)
	if err := uc.authHelper.SaveUser(ctx, u); err != nil {
		return err
	}

	uc.logger.Infow("password reset successfully", "user_id", u.ID())
	return nil
}

func (uc *PasswordResetUseCase) resetLink(token string) string {
	link, err := url.Parse(uc.resetURL)
	if err != nil {
		return uc.resetURL + "?token=" + url.QueryEscape(token)
	}
	q := link.Query()
	q.Set("token", token)
	link.RawQuery = q.Encode()
	return link.String()
}

func passwordFingerprint(hash string) string {
	sum := sha256.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:16])
}
