package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/fees"
)

type createFeeRequest struct {
	Name          string  `json:"name" validate:"required"`
	FeeType       string  `json:"fee_type" validate:"required,oneof=BROKER_COMMISSION ADMIN_FEE RISK_ADJUSTMENT_EARTHQUAKE RISK_ADJUSTMENT_FLOOD RISK_ADJUSTMENT_GENERIC"`
	Percentage    float64 `json:"percentage" validate:"gte=0"`
	EffectiveFrom string  `json:"effective_from" validate:"required"`
	EffectiveTo   string  `json:"effective_to"`
	Active        bool    `json:"active"`
}

type updateFeeRequest struct {
	Percentage    float64 `json:"percentage" validate:"gte=0"`
	EffectiveFrom string  `json:"effective_from" validate:"required"`
	EffectiveTo   string  `json:"effective_to"`
	Active        *bool   `json:"active" validate:"required"`
}

func feeService() *fees.Service {
	return fees.NewService(repository.GetGlobalFactory().GetFeeConfigurationRepository())
}

func HandleListFees(c *fiber.Ctx) error {
	items, err := feeService().List()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(items)
}

func HandleGetFee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid fee id")
	}

	fee, err := feeService().Get(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fee)
}

func HandleCreateFee(c *fiber.Ctx) error {
	var req createFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	effectiveFrom, err := parseDate(req.EffectiveFrom)
	if err != nil {
		return respondBadRequest(c, "effective_from must be yyyy-mm-dd")
	}
	effectiveTo, err := parseDatePtr(req.EffectiveTo)
	if err != nil {
		return respondBadRequest(c, "effective_to must be yyyy-mm-dd")
	}

	fee, err := feeService().Create(req.Name, req.FeeType, req.Percentage, effectiveFrom, effectiveTo, req.Active)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fee)
}

func HandleUpdateFee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid fee id")
	}

	var req updateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	effectiveFrom, err := parseDate(req.EffectiveFrom)
	if err != nil {
		return respondBadRequest(c, "effective_from must be yyyy-mm-dd")
	}
	effectiveTo, err := parseDatePtr(req.EffectiveTo)
	if err != nil {
		return respondBadRequest(c, "effective_to must be yyyy-mm-dd")
	}

	fee, err := feeService().Update(uint(id), req.Percentage, effectiveFrom, effectiveTo, *req.Active)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fee)
}
