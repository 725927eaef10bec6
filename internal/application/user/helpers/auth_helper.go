package helpers

import (
	"context"

	"github.com/deskhub/deskhub/internal/domain/user"
	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/errors"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

// AuthHelper holds the password and profile lookups shared by the account
// use cases.
type AuthHelper struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	policy   *vo.PasswordPolicy
	logger   logger.Interface
}

func NewAuthHelper(userRepo user.Repository, hasher user.PasswordHasher, policy *vo.PasswordPolicy, logger logger.Interface) *AuthHelper {
	if policy == nil {
		policy = vo.DefaultPasswordPolicy()
	}
	return &AuthHelper{userRepo: userRepo, hasher: hasher, policy: policy, logger: logger}
}

func (h *AuthHelper) Hasher() user.PasswordHasher {
	return h.hasher
}

// HashNewPassword checks the password policy and hashes the password.
func (h *AuthHelper) HashNewPassword(plain string) (string, error) {
	if err := h.policy.Validate(plain); err != nil {
		return "", err
	}
	hash, err := h.hasher.Hash(plain)
	if err != nil {
		h.logger.Errorw("failed to hash password", "error", err)
		return "", errors.NewInternalError("failed to process password")
	}
	return hash, nil
}

// EnsureEmailAvailable fails with a conflict when the address is taken.
func (h *AuthHelper) EnsureEmailAvailable(ctx context.Context, email vo.Email) error {
	exists, err := h.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		h.logger.Errorw("failed to check email", "error", err)
		return errors.NewInternalError("failed to create account")
	}
	if exists {
		return errors.NewConflictError("An account with this email already exists.")
	}
	return nil
}

// LoadUser returns the profile or a not-found error.
func (h *AuthHelper) LoadUser(ctx context.Context, id uint) (*user.User, error) {
	if id == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	u, err := h.userRepo.GetByID(ctx, id)
	if err != nil {
		h.logger.Errorw("failed to load user", "error", err, "user_id", id)
		return nil, errors.NewInternalError("failed to load user")
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

// SaveUser persists u, mapping store failures to a generic error.
func (h *AuthHelper) SaveUser(ctx context.Context, u *user.User) error {
	if err := h.userRepo.Update(ctx, u); err != nil {
		h.logger.Errorw("failed to update user", "error", err, "user_id", u.ID())
		return errors.NewInternalError("failed to update user")
	}
	return nil
}
