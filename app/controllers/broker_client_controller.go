package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/buildings"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/clients"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/geography"
)

type createClientRequest struct {
	ClientType           string `json:"client_type" validate:"required,oneof=INDIVIDUAL COMPANY"`
	Name                 string `json:"name" validate:"required"`
	IdentificationNumber string `json:"identification_number" validate:"required"`
	Email                string `json:"email" validate:"omitempty,email"`
	Phone                string `json:"phone"`
	PrimaryAddress       string `json:"primary_address"`
}

type updateClientRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	PrimaryAddress string `json:"primary_address"`
}

type changeIdentifierRequest struct {
	IdentificationNumber string `json:"identification_number" validate:"required"`
	ChangedBy            string `json:"changed_by" validate:"required"`
}

type buildingRequest struct {
	CityID             uint    `json:"city_id" validate:"required"`
	Street             string  `json:"street" validate:"required"`
	Number             string  `json:"number"`
	ConstructionYear   int     `json:"construction_year" validate:"required"`
	Type               string  `json:"type" validate:"required,oneof=RESIDENTIAL COMMERCIAL INDUSTRIAL"`
	Floors             int     `json:"floors" validate:"gte=0"`
	SurfaceArea        float64 `json:"surface_area" validate:"gt=0"`
	InsuredValue       float64 `json:"insured_value" validate:"gt=0"`
	EarthquakeRiskZone bool    `json:"earthquake_risk_zone"`
	FloodRiskZone      bool    `json:"flood_risk_zone"`
}

func clientService() *clients.Service {
	return clients.NewService(repository.GetGlobalFactory().GetClientRepository())
}

func buildingService() *buildings.Service {
	factory := repository.GetGlobalFactory()
	geoService := geography.NewService(factory.GetGeographyRepository())
	return buildings.NewService(factory.GetBuildingRepository(), factory.GetClientRepository(), geoService)
}

// HandleSearchClients searches by exact identifier, name fragment, or
// lists all clients when neither is given.
func HandleSearchClients(c *fiber.Ctx) error {
	offset, limit := parsePaging(c)
	items, total, err := clientService().Search(c.Query("name"), c.Query("identifier"), offset, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(pageResponse(items, total, offset, limit))
}

func HandleGetClient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid client id")
	}

	client, err := clientService().Get(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(client)
}

func HandleCreateClient(c *fiber.Ctx) error {
	var req createClientRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	client, err := clientService().Create(req.ClientType, req.Name, req.IdentificationNumber, req.Email, req.Phone, req.PrimaryAddress)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func HandleUpdateClient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid client id")
	}

	var req updateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	client, err := clientService().Update(uint(id), req.Name, req.Email, req.Phone, req.PrimaryAddress)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(client)
}

// HandleChangeClientIdentifier replaces the identification number and
// records the previous value in the audit trail.
func HandleChangeClientIdentifier(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid client id")
	}

	var req changeIdentifierRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	client, err := clientService().ChangeIdentifier(uint(id), req.IdentificationNumber, req.ChangedBy)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(client)
}

func HandleListClientBuildings(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid client id")
	}

	offset, limit := parsePaging(c)
	items, total, err := buildingService().ListByClient(uint(id), offset, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(pageResponse(items, total, offset, limit))
}

func HandleCreateClientBuilding(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid client id")
	}

	var req buildingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	building, err := buildingService().CreateForClient(uint(id), buildingAttributes(req))
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(building)
}

func HandleGetBuilding(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid building id")
	}

	building, err := buildingService().Get(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(building)
}

// HandleUpdateBuilding updates building attributes. The owner is fixed
// for the lifetime of the building.
func HandleUpdateBuilding(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid building id")
	}

	var req buildingRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	building, err := buildingService().Update(uint(id), buildingAttributes(req))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(building)
}

func buildingAttributes(req buildingRequest) buildings.Attributes {
	return buildings.Attributes{
		CityID:             req.CityID,
		Street:             req.Street,
		Number:             req.Number,
		ConstructionYear:   req.ConstructionYear,
		Type:               req.Type,
		Floors:             req.Floors,
		SurfaceArea:        req.SurfaceArea,
		InsuredValue:       req.InsuredValue,
		EarthquakeRiskZone: req.EarthquakeRiskZone,
		FloodRiskZone:      req.FloodRiskZone,
	}
}
