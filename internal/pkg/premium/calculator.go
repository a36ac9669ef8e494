package premium

import (
	"time"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

// FeeSource provides the fee configurations effective on a given date.
type FeeSource interface {
	FindEffective(date time.Time) ([]models.FeeConfiguration, error)
}

// RiskFactorSource provides the active risk adjustments for a (level,
// reference id) pair.
type RiskFactorSource interface {
	FindActive(level string, referenceID uint) ([]models.RiskFactorConfiguration, error)
}

// feeApplies maps each fee type to its inclusion rule against the insured
// building. Adding a fee type means adding exactly one entry here.
var feeApplies = map[string]func(*models.Building) bool{
	models.FeeTypeBrokerCommission:         func(*models.Building) bool { return true },
	models.FeeTypeAdminFee:                 func(*models.Building) bool { return true },
	models.FeeTypeRiskAdjustmentGeneric:    func(*models.Building) bool { return true },
	models.FeeTypeRiskAdjustmentEarthquake: func(b *models.Building) bool { return b.EarthquakeRiskZone },
	models.FeeTypeRiskAdjustmentFlood:      func(b *models.Building) bool { return b.FloodRiskZone },
}

// Calculator derives the final premium from the broker commission, the fee
// configurations effective on the evaluation date and the active risk
// adjustments for the building's location and type. It holds no state and
// re-reads configuration on every call.
type Calculator struct {
	Fees        FeeSource
	RiskFactors RiskFactorSource
}

// NewCalculator creates a calculator over the given configuration sources.
func NewCalculator(fees FeeSource, riskFactors RiskFactorSource) *Calculator {
	return &Calculator{Fees: fees, RiskFactors: riskFactors}
}

// FinalPremium computes basePremium * (1 + totalPercentage/100) where
// totalPercentage accumulates the broker commission, every applicable
// effective fee and every active risk adjustment. The building must carry
// its city/county/country chain.
func (c *Calculator) FinalPremium(basePremium float64, broker *models.Broker, building *models.Building, evaluationDate time.Time) (float64, error) {
	if basePremium <= 0 {
		return 0, apperr.InvalidArgument("base premium must be positive")
	}

	total := broker.CommissionPercentage

	fees, err := c.Fees.FindEffective(evaluationDate)
	if err != nil {
		return 0, err
	}
	for _, fee := range fees {
		applies, known := feeApplies[fee.Type]
		if known && applies(building) {
			total += fee.Percentage
		}
	}

	riskSum, err := c.sumRiskPercentages(building)
	if err != nil {
		return 0, err
	}
	total += riskSum

	return basePremium * (1 + total/100), nil
}

// sumRiskPercentages sums every active adjustment across the city, county,
// country and building-type lookups. Overlapping rules accumulate; there is
// no override between levels.
func (c *Calculator) sumRiskPercentages(building *models.Building) (float64, error) {
	city := building.City
	if city == nil || city.County == nil || city.County.Country == nil {
		return 0, apperr.InvalidArgument("building is missing its geography chain")
	}

	lookups := []struct {
		level       string
		referenceID uint
	}{
		{models.RiskLevelCity, city.ID},
		{models.RiskLevelCounty, city.County.ID},
		{models.RiskLevelCountry, city.County.Country.ID},
	}
	if typeID, ok := models.BuildingTypeID(building.Type); ok {
		lookups = append(lookups, struct {
			level       string
			referenceID uint
		}{models.RiskLevelBuildingType, typeID})
	}

	var sum float64
	for _, l := range lookups {
		rfs, err := c.RiskFactors.FindActive(l.level, l.referenceID)
		if err != nil {
			return 0, err
		}
		for _, rf := range rfs {
			sum += rf.AdjustmentPercentage
		}
	}
	return sum, nil
}
