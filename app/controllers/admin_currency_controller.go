package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/currencies"
)

type createCurrencyRequest struct {
	Code               string  `json:"code" validate:"required,len=3"`
	Name               string  `json:"name" validate:"required"`
	ExchangeRateToBase float64 `json:"exchange_rate_to_base" validate:"gt=0"`
	Active             bool    `json:"active"`
}

type updateCurrencyRequest struct {
	Name               string  `json:"name" validate:"required"`
	ExchangeRateToBase float64 `json:"exchange_rate_to_base" validate:"gt=0"`
	Active             *bool   `json:"active" validate:"required"`
}

func currencyService() *currencies.Service {
	factory := repository.GetGlobalFactory()
	return currencies.NewService(factory.GetCurrencyRepository(), factory.GetPolicyRepository())
}

func HandleListCurrencies(c *fiber.Ctx) error {
	items, err := currencyService().List()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(items)
}

func HandleGetCurrency(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid currency id")
	}

	currency, err := currencyService().Get(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(currency)
}

func HandleCreateCurrency(c *fiber.Ctx) error {
	var req createCurrencyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	currency, err := currencyService().Create(req.Code, req.Name, req.ExchangeRateToBase, req.Active)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(currency)
}

// HandleUpdateCurrency updates a currency. Deactivation is rejected while
// active policies still reference it.
func HandleUpdateCurrency(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid currency id")
	}

	var req updateCurrencyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	currency, err := currencyService().Update(uint(id), req.Name, req.ExchangeRateToBase, *req.Active)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(currency)
}
