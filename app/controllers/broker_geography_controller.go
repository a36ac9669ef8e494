package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/geography"
)

func geographyService() *geography.Service {
	return geography.NewService(repository.GetGlobalFactory().GetGeographyRepository())
}

func HandleListCountries(c *fiber.Ctx) error {
	offset, limit := parsePaging(c)
	items, total, err := geographyService().ListCountries(offset, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(pageResponse(items, total, offset, limit))
}

func HandleListCounties(c *fiber.Ctx) error {
	countryID, err := c.ParamsInt("countryID")
	if err != nil || countryID <= 0 {
		return respondBadRequest(c, "invalid country id")
	}

	offset, limit := parsePaging(c)
	items, total, err := geographyService().ListCounties(uint(countryID), offset, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(pageResponse(items, total, offset, limit))
}

func HandleListCities(c *fiber.Ctx) error {
	countyID, err := c.ParamsInt("countyID")
	if err != nil || countyID <= 0 {
		return respondBadRequest(c, "invalid county id")
	}

	offset, limit := parsePaging(c)
	items, total, err := geographyService().ListCities(uint(countyID), offset, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(pageResponse(items, total, offset, limit))
}

func HandleGetCity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return respondBadRequest(c, "invalid city id")
	}

	city, err := geographyService().GetCity(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(city)
}
