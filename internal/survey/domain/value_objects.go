package domain

import (
	"fmt"
	"strings"
)

// VisitPurpose distinguishes the two intake tracks of the hospital.
type VisitPurpose string

const (
	PurposeGeneralPractice    VisitPurpose = "general-practice"
	PurposeOccupationalHealth VisitPurpose = "occupational-health"
)

func NewVisitPurpose(value string) (VisitPurpose, error) {
	switch canonical(value) {
	case "general-practice", "general practice", "gp":
		return PurposeGeneralPractice, nil
	case "occupational-health", "occupational health", "medicals":
		return PurposeOccupationalHealth, nil
	}
	return "", fmt.Errorf("invalid visit purpose: %s", value)
}

func (p VisitPurpose) String() string {
	return string(p)
}

// PatientType marks whether the patient has attended before.
type PatientType string

const (
	PatientNew       PatientType = "new"
	PatientReturning PatientType = "returning"
)

func NewPatientType(value string) (PatientType, error) {
	switch canonical(value) {
	case "new":
		return PatientNew, nil
	case "returning":
		return PatientReturning, nil
	}
	return "", fmt.Errorf("invalid patient type: %s", value)
}

func (p PatientType) String() string {
	return string(p)
}

// UserType is the respondent's employment category.
type UserType string

const (
	UserEmployee  UserType = "employee"
	UserRetiree   UserType = "retiree"
	UserDependant UserType = "dependant"
	UserNonStaff  UserType = "non-staff"
)

// UserTypes lists the known employment categories in display order.
var UserTypes = []UserType{UserEmployee, UserRetiree, UserDependant, UserNonStaff}

func NewUserType(value string) (UserType, error) {
	switch canonical(value) {
	case "employee", "staff":
		return UserEmployee, nil
	case "retiree", "pensioner":
		return UserRetiree, nil
	case "dependant", "dependent":
		return UserDependant, nil
	case "non-staff", "nonstaff", "visitor":
		return UserNonStaff, nil
	}
	return "", fmt.Errorf("invalid user type: %s", value)
}

func (u UserType) String() string {
	return string(u)
}

// VisitRecency is the self-reported bucket for the respondent's last visit.
type VisitRecency string

const (
	RecencyLessThanMonth  VisitRecency = "less-than-month"
	RecencyOneTwoMonths   VisitRecency = "one-two-months"
	RecencyThreeSixMonths VisitRecency = "three-six-months"
	RecencyMoreThanSix    VisitRecency = "more-than-six-months"
)

// VisitRecencies lists the four recency buckets from most to least recent.
// Aggregation reports every bucket even when empty.
var VisitRecencies = []VisitRecency{RecencyLessThanMonth, RecencyOneTwoMonths, RecencyThreeSixMonths, RecencyMoreThanSix}

func NewVisitRecency(value string) (VisitRecency, error) {
	switch canonical(value) {
	case "less-than-month", "less than a month":
		return RecencyLessThanMonth, nil
	case "one-two-months", "1-2 months":
		return RecencyOneTwoMonths, nil
	case "three-six-months", "3-6 months":
		return RecencyThreeSixMonths, nil
	case "more-than-six-months", "more than 6 months":
		return RecencyMoreThanSix, nil
	}
	return "", fmt.Errorf("invalid visit recency: %s", value)
}

func (r VisitRecency) String() string {
	return string(r)
}

// LocationType classifies ratable hospital units.
type LocationType string

const (
	LocationDepartment         LocationType = "department"
	LocationWard               LocationType = "ward"
	LocationCanteen            LocationType = "canteen"
	LocationOccupationalHealth LocationType = "occupational_health"
)

// LocationTypes lists the known unit classifications.
var LocationTypes = []LocationType{LocationDepartment, LocationWard, LocationCanteen, LocationOccupationalHealth}

func NewLocationType(value string) (LocationType, error) {
	switch canonical(value) {
	case "department":
		return LocationDepartment, nil
	case "ward":
		return LocationWard, nil
	case "canteen":
		return LocationCanteen, nil
	case "occupational_health", "occupational-health":
		return LocationOccupationalHealth, nil
	}
	return "", fmt.Errorf("invalid location type: %s", value)
}

func (t LocationType) String() string {
	return string(t)
}

func canonical(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
