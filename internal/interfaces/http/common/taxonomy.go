package common

import (
	"strings"

	"github.com/careloop/patient-survey-services/api/internal/survey/domain"
)

// Display names live at the HTTP boundary so the aggregation layer can stay
// on canonical codes. The dashboard renders these verbatim.

var userTypeDisplayNames = map[domain.UserType]string{
	domain.UserEmployee:  "Employee",
	domain.UserRetiree:   "Retiree",
	domain.UserDependant: "Dependant",
	domain.UserNonStaff:  "Non-staff",
}

var patientTypeDisplayNames = map[domain.PatientType]string{
	domain.PatientNew:       "First visit",
	domain.PatientReturning: "Returning",
}

var visitPurposeDisplayNames = map[domain.VisitPurpose]string{
	domain.PurposeGeneralPractice:    "General practice",
	domain.PurposeOccupationalHealth: "Occupational health",
}

var visitRecencyDisplayNames = map[domain.VisitRecency]string{
	domain.RecencyLessThanMonth:  "Less than a month ago",
	domain.RecencyOneTwoMonths:   "1-2 months ago",
	domain.RecencyThreeSixMonths: "3-6 months ago",
	domain.RecencyMoreThanSix:    "More than 6 months ago",
}

var locationTypeDisplayNames = map[domain.LocationType]string{
	domain.LocationDepartment:         "Department",
	domain.LocationWard:               "Ward",
	domain.LocationCanteen:            "Canteen",
	domain.LocationOccupationalHealth: "Occupational health unit",
}

// DisplayUserType returns the dashboard label for a user type code.
func DisplayUserType(t domain.UserType) string {
	if name, ok := userTypeDisplayNames[t]; ok {
		return name
	}
	return titleCase(string(t))
}

// DisplayPatientType returns the dashboard label for a patient type code.
func DisplayPatientType(t domain.PatientType) string {
	if name, ok := patientTypeDisplayNames[t]; ok {
		return name
	}
	return titleCase(string(t))
}

// DisplayVisitPurpose returns the dashboard label for a visit purpose code.
func DisplayVisitPurpose(p domain.VisitPurpose) string {
	if name, ok := visitPurposeDisplayNames[p]; ok {
		return name
	}
	return titleCase(string(p))
}

// DisplayVisitRecency returns the dashboard label for a recency bucket code.
func DisplayVisitRecency(r domain.VisitRecency) string {
	if name, ok := visitRecencyDisplayNames[r]; ok {
		return name
	}
	return titleCase(string(r))
}

// DisplayLocationType returns the dashboard label for a location type code.
func DisplayLocationType(t domain.LocationType) string {
	if name, ok := locationTypeDisplayNames[t]; ok {
		return name
	}
	return titleCase(string(t))
}

// titleCase is the fallback for codes without a registered display name.
// Hyphens and underscores become spaces and the first rune is capitalized.
func titleCase(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	replacer := strings.NewReplacer("-", " ", "_", " ")
	spaced := replacer.Replace(code)
	return strings.ToUpper(spaced[:1]) + spaced[1:]
}
