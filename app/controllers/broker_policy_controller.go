package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/policies"
)

type createPolicyRequest struct {
	ClientID    uint    `json:"client_id" validate:"required"`
	BuildingID  uint    `json:"building_id" validate:"required"`
	BrokerID    uint    `json:"broker_id" validate:"required"`
	CurrencyID  uint    `json:"currency_id" validate:"required"`
	BasePremium float64 `json:"base_premium" validate:"required,gt=0"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     string  `json:"end_date" validate:"required"`
}

type cancelPolicyRequest struct {
	Reason           string `json:"reason" validate:"required"`
	CancellationDate string `json:"cancellation_date" validate:"required"`
}

func policyService() *policies.Service {
	return policies.NewService(repository.GetGlobalFactory().GetTxManager())
}

// HandleListPolicies returns a filtered, paginated policy page. Overdue
// active policies are expired before the page is read.
func HandleListPolicies(c *fiber.Ctx) error {
	offset, limit := parsePaging(c)

	filter := repository.PolicyFilter{
		ClientID: uintPtr(c.QueryInt("client_id", 0)),
		BrokerID: uintPtr(c.QueryInt("broker_id", 0)),
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	var err error
	if filter.StartFrom, err = parseDatePtr(c.Query("start_from")); err != nil {
		return respondBadRequest(c, "start_from must be yyyy-mm-dd")
	}
	if filter.EndTo, err = parseDatePtr(c.Query("end_to")); err != nil {
		return respondBadRequest(c, "end_to must be yyyy-mm-dd")
	}

	items, total, err := policyService().Search(filter, today(), offset, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(pageResponse(items, total, offset, limit))
}

// HandleGetPolicy returns a single policy with its related entities.
func HandleGetPolicy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid policy id")
	}

	policy, err := policyService().Get(uint(id), today())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(policy)
}

// HandleCreatePolicy creates a draft policy with a premium snapshot
// evaluated against the start date.
func HandleCreatePolicy(c *fiber.Ctx) error {
	var req createPolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return respondBadRequest(c, "start_date must be yyyy-mm-dd")
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return respondBadRequest(c, "end_date must be yyyy-mm-dd")
	}

	policy, err := policyService().CreateDraft(policies.CreateDraftInput{
		ClientID:    req.ClientID,
		BuildingID:  req.BuildingID,
		BrokerID:    req.BrokerID,
		CurrencyID:  req.CurrencyID,
		BasePremium: req.BasePremium,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(policy)
}

// HandleActivatePolicy transitions a draft policy to active.
func HandleActivatePolicy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid policy id")
	}

	policy, err := policyService().Activate(uint(id), today())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(policy)
}

// HandleCancelPolicy cancels an active policy with a reason and date.
func HandleCancelPolicy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid policy id")
	}

	var req cancelPolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}
	cancellationDate, err := parseDate(req.CancellationDate)
	if err != nil {
		return respondBadRequest(c, "cancellation_date must be yyyy-mm-dd")
	}

	policy, err := policyService().Cancel(uint(id), req.Reason, cancellationDate)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(policy)
}
