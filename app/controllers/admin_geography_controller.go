package controllers

import (
	"github.com/gofiber/fiber/v2"
)

type createCountryRequest struct {
	Name string `json:"name" validate:"required"`
}

type createCountyRequest struct {
	Name string `json:"name" validate:"required"`
}

type createCityRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code"`
}

func HandleCreateCountry(c *fiber.Ctx) error {
	var req createCountryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	country, err := geographyService().CreateCountry(req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(country)
}

func HandleCreateCounty(c *fiber.Ctx) error {
	countryID, err := c.ParamsInt("countryID")
	if err != nil || countryID <= 0 {
		return respondBadRequest(c, "invalid country id")
	}

	var req createCountyRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	county, err := geographyService().CreateCounty(uint(countryID), req.Name)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(county)
}

func HandleCreateCity(c *fiber.Ctx) error {
	countyID, err := c.ParamsInt("countyID")
	if err != nil || countyID <= 0 {
		return respondBadRequest(c, "invalid county id")
	}

	var req createCityRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadRequest(c, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return respondValidationErr(c, err)
	}

	city, err := geographyService().CreateCity(uint(countyID), req.Name, req.Code)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(city)
}
