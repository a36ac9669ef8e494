package premium_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/premium"
)

type stubFeeSource struct {
	fees []models.FeeConfiguration
}

func (s *stubFeeSource) FindEffective(date time.Time) ([]models.FeeConfiguration, error) {
	effective := make([]models.FeeConfiguration, 0)
	for _, fee := range s.fees {
		if fee.EffectiveOn(date) {
			effective = append(effective, fee)
		}
	}
	return effective, nil
}

type stubRiskSource struct {
	factors []models.RiskFactorConfiguration
}

func (s *stubRiskSource) FindActive(level string, referenceID uint) ([]models.RiskFactorConfiguration, error) {
	matching := make([]models.RiskFactorConfiguration, 0)
	for _, rf := range s.factors {
		if rf.Active && rf.Level == level && rf.ReferenceID == referenceID {
			matching = append(matching, rf)
		}
	}
	return matching, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func testBuilding() *models.Building {
	return &models.Building{
		ID:            1,
		OwnerClientID: 1,
		CityID:        10,
		Type:          models.BuildingTypeResidential,
		City: &models.City{
			ID:       10,
			CountyID: 20,
			County: &models.County{
				ID:        20,
				CountryID: 30,
				Country:   &models.Country{ID: 30, Name: "Romania"},
			},
		},
	}
}

func newCalculator(fees []models.FeeConfiguration, factors []models.RiskFactorConfiguration) *premium.Calculator {
	return premium.NewCalculator(&stubFeeSource{fees: fees}, &stubRiskSource{factors: factors})
}

func TestFinalPremiumWithNoConfiguration(t *testing.T) {
	calc := newCalculator(nil, nil)
	broker := &models.Broker{CommissionPercentage: 5}

	result, err := calc.FinalPremium(1000, broker, testBuilding(), date(2026, time.March, 1))

	require.NoError(t, err)
	assert.InDelta(t, 1050.0, result, 1e-9)
}

func TestFinalPremiumRejectsNonPositiveBase(t *testing.T) {
	calc := newCalculator(nil, nil)
	broker := &models.Broker{CommissionPercentage: 5}

	_, err := calc.FinalPremium(0, broker, testBuilding(), date(2026, time.March, 1))
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = calc.FinalPremium(-100, broker, testBuilding(), date(2026, time.March, 1))
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestFinalPremiumCombinedScenario(t *testing.T) {
	// commission 5 + admin fee 2 + earthquake 10 (flagged) + risk 6.5 = 23.5
	fees := []models.FeeConfiguration{
		{Type: models.FeeTypeAdminFee, Percentage: 2, EffectiveFrom: date(2026, time.January, 1), Active: true},
		{Type: models.FeeTypeRiskAdjustmentEarthquake, Percentage: 10, EffectiveFrom: date(2026, time.January, 1), Active: true},
		{Type: models.FeeTypeRiskAdjustmentFlood, Percentage: 7, EffectiveFrom: date(2026, time.January, 1), Active: true},
	}
	factors := []models.RiskFactorConfiguration{
		{Level: models.RiskLevelCity, ReferenceID: 10, AdjustmentPercentage: 2.5, Active: true},
		{Level: models.RiskLevelCountry, ReferenceID: 30, AdjustmentPercentage: 3, Active: true},
		{Level: models.RiskLevelBuildingType, ReferenceID: 0, AdjustmentPercentage: 1, Active: true},
	}
	calc := newCalculator(fees, factors)
	broker := &models.Broker{CommissionPercentage: 5}

	building := testBuilding()
	building.EarthquakeRiskZone = true
	building.FloodRiskZone = false

	result, err := calc.FinalPremium(1000, broker, building, date(2026, time.March, 1))

	require.NoError(t, err)
	assert.InDelta(t, 1235.0, result, 1e-9)
}

func TestFinalPremiumZoneFeesRequireMatchingFlag(t *testing.T) {
	fees := []models.FeeConfiguration{
		{Type: models.FeeTypeRiskAdjustmentEarthquake, Percentage: 10, EffectiveFrom: date(2026, time.January, 1), Active: true},
		{Type: models.FeeTypeRiskAdjustmentFlood, Percentage: 7, EffectiveFrom: date(2026, time.January, 1), Active: true},
	}
	calc := newCalculator(fees, nil)
	broker := &models.Broker{CommissionPercentage: 0}

	building := testBuilding()
	result, err := calc.FinalPremium(1000, broker, building, date(2026, time.March, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, result, 1e-9)

	building.FloodRiskZone = true
	result, err = calc.FinalPremium(1000, broker, building, date(2026, time.March, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1070.0, result, 1e-9)

	building.EarthquakeRiskZone = true
	result, err = calc.FinalPremium(1000, broker, building, date(2026, time.March, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1170.0, result, 1e-9)
}

func TestFinalPremiumEffectiveDateBoundaries(t *testing.T) {
	fee := models.FeeConfiguration{
		Type:          models.FeeTypeAdminFee,
		Percentage:    2,
		EffectiveFrom: date(2026, time.February, 1),
		EffectiveTo:   datePtr(2026, time.February, 28),
		Active:        true,
	}
	calc := newCalculator([]models.FeeConfiguration{fee}, nil)
	broker := &models.Broker{CommissionPercentage: 0}
	building := testBuilding()

	cases := []struct {
		name     string
		evalDate time.Time
		expected float64
	}{
		{"day before range", date(2026, time.January, 31), 1000.0},
		{"first day of range", date(2026, time.February, 1), 1020.0},
		{"last day of range", date(2026, time.February, 28), 1020.0},
		{"day after range", date(2026, time.March, 1), 1000.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := calc.FinalPremium(1000, broker, building, tc.evalDate)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, result, 1e-9)
		})
	}
}

func TestFinalPremiumIgnoresInactiveFees(t *testing.T) {
	fee := models.FeeConfiguration{
		Type:          models.FeeTypeAdminFee,
		Percentage:    2,
		EffectiveFrom: date(2026, time.January, 1),
		Active:        false,
	}
	calc := newCalculator([]models.FeeConfiguration{fee}, nil)
	broker := &models.Broker{CommissionPercentage: 0}

	result, err := calc.FinalPremium(1000, broker, testBuilding(), date(2026, time.March, 1))

	require.NoError(t, err)
	assert.InDelta(t, 1000.0, result, 1e-9)
}

func TestFinalPremiumSumsRiskFactorsAcrossLevels(t *testing.T) {
	factors := []models.RiskFactorConfiguration{
		{Level: models.RiskLevelCity, ReferenceID: 10, AdjustmentPercentage: 1, Active: true},
		{Level: models.RiskLevelCounty, ReferenceID: 20, AdjustmentPercentage: 2, Active: true},
		{Level: models.RiskLevelCountry, ReferenceID: 30, AdjustmentPercentage: 3, Active: true},
		{Level: models.RiskLevelBuildingType, ReferenceID: 0, AdjustmentPercentage: 4, Active: true},
		// different references and inactive rows must be ignored
		{Level: models.RiskLevelCity, ReferenceID: 99, AdjustmentPercentage: 50, Active: true},
		{Level: models.RiskLevelCountry, ReferenceID: 30, AdjustmentPercentage: 50, Active: false},
	}
	calc := newCalculator(nil, factors)
	broker := &models.Broker{CommissionPercentage: 0}

	result, err := calc.FinalPremium(1000, broker, testBuilding(), date(2026, time.March, 1))

	require.NoError(t, err)
	assert.InDelta(t, 1100.0, result, 1e-9)
}

func TestFinalPremiumNegativeRiskFactorLowersPremium(t *testing.T) {
	factors := []models.RiskFactorConfiguration{
		{Level: models.RiskLevelCity, ReferenceID: 10, AdjustmentPercentage: -3, Active: true},
	}
	calc := newCalculator(nil, factors)
	broker := &models.Broker{CommissionPercentage: 0}

	result, err := calc.FinalPremium(1000, broker, testBuilding(), date(2026, time.March, 1))

	require.NoError(t, err)
	assert.InDelta(t, 970.0, result, 1e-9)
}

func TestFinalPremiumRequiresGeographyChain(t *testing.T) {
	calc := newCalculator(nil, nil)
	broker := &models.Broker{CommissionPercentage: 5}

	building := testBuilding()
	building.City = nil

	_, err := calc.FinalPremium(1000, broker, building, date(2026, time.March, 1))
	assert.True(t, apperr.IsInvalidArgument(err))
}
