package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVisitPurpose(t *testing.T) {
	purpose, err := NewVisitPurpose("General Practice")
	require.NoError(t, err)
	assert.Equal(t, PurposeGeneralPractice, purpose)

	purpose, err = NewVisitPurpose("medicals")
	require.NoError(t, err)
	assert.Equal(t, PurposeOccupationalHealth, purpose)

	_, err = NewVisitPurpose("walk-in")
	assert.Error(t, err)
}

func TestNewUserType(t *testing.T) {
	for input, want := range map[string]UserType{
		"employee":  UserEmployee,
		"Staff":     UserEmployee,
		"pensioner": UserRetiree,
		"dependent": UserDependant,
		"visitor":   UserNonStaff,
	} {
		got, err := NewUserType(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := NewUserType("contractor")
	assert.Error(t, err)
}

func TestNewVisitRecency(t *testing.T) {
	recency, err := NewVisitRecency("1-2 months")
	require.NoError(t, err)
	assert.Equal(t, RecencyOneTwoMonths, recency)

	_, err = NewVisitRecency("yesterday")
	assert.Error(t, err)
}

func TestNewLocationType(t *testing.T) {
	locType, err := NewLocationType("occupational-health")
	require.NoError(t, err)
	assert.Equal(t, LocationOccupationalHealth, locType)

	_, err = NewLocationType("pharmacy2")
	assert.Error(t, err)
}
