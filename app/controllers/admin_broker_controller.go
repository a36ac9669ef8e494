package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/brokers"
)

type createBrokerRequest struct {
	BrokerCode           string  `json:"broker_code" validate:"required"`
	Name                 string  `json:"name" validate:"required"`
	Email                string  `json:"email" validate:"omitempty,email"`
	Phone                string  `json:"phone"`
	CommissionPercentage float64 `json:"commission_percentage" validate:"gte=0"`
	Status               string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type updateBrokerRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Email                string  `json:"email" validate:"omitempty,email"`
	Phone                string  `json:"phone"`
	CommissionPercentage float64 `json:"commission_percentage" validate:"gte=0"`
}

type brokerStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE"`
}

func brokerService() *brokers.Service {
	return brokers.NewService(repository.GetGlobalFactory().GetBrokerRepository())
}

func HandleListBrokers(c *fiber.Ctx) error {
	offset, limit := parsePaging(c)
	items, total, err := brokerService().List(offset, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(pageResponse(items, total, offset, limit))
}

func HandleGetBroker(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid broker id")
	}

	broker, err := brokerService().Get(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(broker)
}

func HandleCreateBroker(c *fiber.Ctx) error {
	var req createBrokerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	broker, err := brokerService().Create(req.BrokerCode, req.Name, req.Email, req.Phone, req.CommissionPercentage, req.Status)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(broker)
}

func HandleUpdateBroker(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid broker id")
	}

	var req updateBrokerRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	broker, err := brokerService().Update(uint(id), req.Name, req.Email, req.Phone, req.CommissionPercentage)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(broker)
}

// HandleChangeBrokerStatus activates or deactivates a broker. Inactive
// brokers keep their existing policies but cannot write new ones.
func HandleChangeBrokerStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid broker id")
	}

	var req brokerStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	broker, err := brokerService().ChangeStatus(uint(id), req.Status)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(broker)
}
