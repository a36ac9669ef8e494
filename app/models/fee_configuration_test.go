package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/policymanagementplatform/insurance-core/app/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveOnInclusiveBounds(t *testing.T) {
	to := day(2026, time.June, 30)
	fee := models.FeeConfiguration{
		Type:          models.FeeTypeAdminFee,
		Percentage:    2,
		EffectiveFrom: day(2026, time.June, 1),
		EffectiveTo:   &to,
		Active:        true,
	}

	assert.False(t, fee.EffectiveOn(day(2026, time.May, 31)))
	assert.True(t, fee.EffectiveOn(day(2026, time.June, 1)))
	assert.True(t, fee.EffectiveOn(day(2026, time.June, 15)))
	assert.True(t, fee.EffectiveOn(day(2026, time.June, 30)))
	assert.False(t, fee.EffectiveOn(day(2026, time.July, 1)))
}

func TestEffectiveOnOpenEndedRange(t *testing.T) {
	fee := models.FeeConfiguration{
		Type:          models.FeeTypeAdminFee,
		Percentage:    2,
		EffectiveFrom: day(2026, time.June, 1),
		Active:        true,
	}

	assert.True(t, fee.EffectiveOn(day(2030, time.January, 1)))
	assert.False(t, fee.EffectiveOn(day(2026, time.May, 31)))
}

func TestEffectiveOnInactive(t *testing.T) {
	fee := models.FeeConfiguration{
		Type:          models.FeeTypeAdminFee,
		Percentage:    2,
		EffectiveFrom: day(2026, time.June, 1),
		Active:        false,
	}

	assert.False(t, fee.EffectiveOn(day(2026, time.June, 15)))
}
