package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/policymanagementplatform/insurance-core/internal/pkg/database"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/reports"
)

// HandlePolicyReport returns policy counts and premium totals grouped by
// geography and broker, filtered by optional date range and ids.
func HandlePolicyReport(c *fiber.Ctx) error {
	offset, limit := parsePaging(c)

	filter := reports.Filter{
		BrokerID:  uintPtr(c.QueryInt("broker_id", 0)),
		CountryID: uintPtr(c.QueryInt("country_id", 0)),
		CountyID:  uintPtr(c.QueryInt("county_id", 0)),
		CityID:    uintPtr(c.QueryInt("city_id", 0)),
	}
	var err error
	if filter.StartDate, err = parseDatePtr(c.Query("start_date")); err != nil {
		return respondBadRequest(c, "start_date must be yyyy-mm-dd")
	}
	if filter.EndDate, err = parseDatePtr(c.Query("end_date")); err != nil {
		return respondBadRequest(c, "end_date must be yyyy-mm-dd")
	}

	rows, err := reports.NewService(database.GetDB()).PolicyReport(filter, offset, limit)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(rows)
}
