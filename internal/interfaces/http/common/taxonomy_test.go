package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

func TestDisplayNames(t *testing.T) {
	assert.Equal(t, "Employee", DisplayUserType(domain.UserEmployee))
	assert.Equal(t, "Non-staff", DisplayUserType(domain.UserNonStaff))
	assert.Equal(t, "First visit", DisplayPatientType(domain.PatientNew))
	assert.Equal(t, "Occupational health", DisplayVisitPurpose(domain.PurposeOccupationalHealth))
	assert.Equal(t, "1-2 months ago", DisplayVisitRecency(domain.RecencyOneTwoMonths))
	assert.Equal(t, "Occupational health unit", DisplayLocationType(domain.LocationOccupationalHealth))
}

func TestDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "Day clinic", DisplayLocationType(domain.LocationType("day-clinic")))
	assert.Equal(t, "", DisplayUserType(domain.UserType("")))
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)

	parsed, ok := ParseDate("2026-03-15", loc)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, loc), parsed)

	zero, ok := ParseDate("  ", loc)
	assert.True(t, ok)
	assert.True(t, zero.IsZero())

	_, ok = ParseDate("15/03/2026", loc)
	assert.False(t, ok)
}

func TestEndOfDay(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)
	end := EndOfDay(day)
	assert.Equal(t, 15, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.True(t, end.Before(day.AddDate(0, 0, 1)))

	assert.True(t, EndOfDay(time.Time{}).IsZero())
}

func TestParsePositiveInt(t *testing.T) {
	value, ok := ParsePositiveInt("25", 10)
	assert.True(t, ok)
	assert.Equal(t, 25, value)

	value, ok = ParsePositiveInt("-3", 10)
	assert.False(t, ok)
	assert.Equal(t, 10, value)

	value, ok = ParsePositiveInt("", 10)
	assert.False(t, ok)
	assert.Equal(t, 10, value)
}
