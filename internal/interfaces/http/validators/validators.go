// Package validators registers the binding rules request DTOs use.
package validators

import (
	"sync"

	"github.com/go-playground/validator/v10"

	vo "github.com/deskhub/deskhub/internal/domain/ticket/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/utils"
)

var (
	once   sync.Once
	regErr error
)

// Register installs ticket_status and user_role. Safe to call repeatedly.
func Register() error {
	once.Do(func() {
		if regErr = utils.RegisterValidation("ticket_status", ticketStatus); regErr != nil {
			return
		}
		regErr = utils.RegisterValidation("user_role", userRole)
	})
	return regErr
}

func ticketStatus(fl validator.FieldLevel) bool {
	_, err := vo.ParseTicketStatus(fl.Field().String())
	return err == nil
}

func userRole(fl validator.FieldLevel) bool {
	_, err := authorization.ParseUserRole(fl.Field().String())
	return err == nil
}
