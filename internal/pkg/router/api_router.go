package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/policymanagementplatform/insurance-core/app/controllers"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "insurance core api",
		})
	})

	brokersGroup := api.Group("/brokers")

	policiesGroup := brokersGroup.Group("/policies")
	policiesGroup.Get("/", controllers.HandleListPolicies)
	policiesGroup.Post("/", controllers.HandleCreatePolicy)
	policiesGroup.Get("/:id", controllers.HandleGetPolicy)
	policiesGroup.Post("/:id/activate", controllers.HandleActivatePolicy)
	policiesGroup.Post("/:id/cancel", controllers.HandleCancelPolicy)

	clientsGroup := brokersGroup.Group("/clients")
	clientsGroup.Get("/", controllers.HandleSearchClients)
	clientsGroup.Post("/", controllers.HandleCreateClient)
	clientsGroup.Get("/:id", controllers.HandleGetClient)
	clientsGroup.Put("/:id", controllers.HandleUpdateClient)
	clientsGroup.Put("/:id/identifier", controllers.HandleChangeClientIdentifier)
	clientsGroup.Get("/:id/buildings", controllers.HandleListClientBuildings)
	clientsGroup.Post("/:id/buildings", controllers.HandleCreateClientBuilding)

	buildingsGroup := brokersGroup.Group("/buildings")
	buildingsGroup.Get("/:id", controllers.HandleGetBuilding)
	buildingsGroup.Put("/:id", controllers.HandleUpdateBuilding)

	geographyGroup := brokersGroup.Group("/geography")
	geographyGroup.Get("/countries", controllers.HandleListCountries)
	geographyGroup.Get("/countries/:countryID/counties", controllers.HandleListCounties)
	geographyGroup.Get("/counties/:countyID/cities", controllers.HandleListCities)
	geographyGroup.Get("/cities/:id", controllers.HandleGetCity)

	admin := api.Group("/admin")

	adminBrokers := admin.Group("/brokers")
	adminBrokers.Get("/", controllers.HandleListBrokers)
	adminBrokers.Post("/", controllers.HandleCreateBroker)
	adminBrokers.Get("/:id", controllers.HandleGetBroker)
	adminBrokers.Put("/:id", controllers.HandleUpdateBroker)
	adminBrokers.Put("/:id/status", controllers.HandleChangeBrokerStatus)

	adminCurrencies := admin.Group("/currencies")
	adminCurrencies.Get("/", controllers.HandleListCurrencies)
	adminCurrencies.Post("/", controllers.HandleCreateCurrency)
	adminCurrencies.Get("/:id", controllers.HandleGetCurrency)
	adminCurrencies.Put("/:id", controllers.HandleUpdateCurrency)

	adminFees := admin.Group("/fees")
	adminFees.Get("/", controllers.HandleListFees)
	adminFees.Post("/", controllers.HandleCreateFee)
	adminFees.Get("/:id", controllers.HandleGetFee)
	adminFees.Put("/:id", controllers.HandleUpdateFee)

	adminRiskFactors := admin.Group("/risk-factors")
	adminRiskFactors.Get("/", controllers.HandleListRiskFactors)
	adminRiskFactors.Post("/", controllers.HandleCreateRiskFactor)
	adminRiskFactors.Get("/:id", controllers.HandleGetRiskFactor)
	adminRiskFactors.Put("/:id", controllers.HandleUpdateRiskFactor)

	adminGeography := admin.Group("/geography")
	adminGeography.Post("/countries", controllers.HandleCreateCountry)
	adminGeography.Post("/countries/:countryID/counties", controllers.HandleCreateCounty)
	adminGeography.Post("/counties/:countyID/cities", controllers.HandleCreateCity)

	admin.Get("/reports/policies", controllers.HandlePolicyReport)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
