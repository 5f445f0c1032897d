package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-platform/internal/api/dto"
	"github.com/spec-kit/booking-platform/internal/auth"
	"github.com/spec-kit/booking-platform/internal/domain"
	"github.com/spec-kit/booking-platform/internal/service"
	apperrors "github.com/spec-kit/booking-platform/pkg/util"
)

// AccountsHandler exposes account endpoints for the user service.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// Root handles GET /.
func (h *AccountsHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "user service up"})
}

// List handles GET /users/.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	accounts, err := h.accounts.ListAccounts(c.UserContext())
	if err != nil {
		return err
	}

	projections := make([]domain.AccountProjection, 0, len(accounts))
	for i := range accounts {
		projections = append(projections, accounts[i].Projection())
	}
	return c.JSON(projections)
}

// Create handles POST /users/.
func (h *AccountsHandler) Create(c *fiber.Ctx) error {
	var req dto.AccountCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.Username == "" {
		return apperrors.NewValidationError("email, password, username required", nil)
	}

	account, err := h.accounts.CreateAccount(c.UserContext(), service.AccountCreateInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Balance:  req.Balance,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(account.Projection())
}

// Login handles POST /login/.
func (h *AccountsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	account, token, exp, err := h.accounts.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Username:  account.Username,
		Balance:   account.Balance,
		ID:        account.ID,
		Token:     token,
		ExpiresAt: exp,
	})
}

// Me handles GET /users/me, behind the bearer-token middleware.
func (h *AccountsHandler) Me(c *fiber.Ctx) error {
	account, ok := auth.AccountFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return c.JSON(account.Projection())
}
