package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/riskfactors"
)

type createRiskFactorRequest struct {
	Level                string  `json:"level" validate:"required,oneof=COUNTRY COUNTY CITY BUILDING_TYPE"`
	ReferenceID          uint    `json:"reference_id"`
	AdjustmentPercentage float64 `json:"adjustment_percentage"`
	Active               bool    `json:"active"`
}

type updateRiskFactorRequest struct {
	AdjustmentPercentage float64 `json:"adjustment_percentage"`
	Active               *bool   `json:"active" validate:"required"`
}

func riskFactorService() *riskfactors.Service {
	return riskfactors.NewService(repository.GetGlobalFactory().GetRiskFactorRepository())
}

func HandleListRiskFactors(c *fiber.Ctx) error {
	items, err := riskFactorService().List()
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(items)
}

func HandleGetRiskFactor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid risk factor id")
	}

	factor, err := riskFactorService().Get(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(factor)
}

func HandleCreateRiskFactor(c *fiber.Ctx) error {
	var req createRiskFactorRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	factor, err := riskFactorService().Create(req.Level, req.ReferenceID, req.AdjustmentPercentage, req.Active)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(factor)
}

func HandleUpdateRiskFactor(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid risk factor id")
	}

	var req updateRiskFactorRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	factor, err := riskFactorService().Update(uint(id), req.AdjustmentPercentage, *req.Active)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(factor)
}
