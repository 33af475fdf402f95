package admin

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/careloop/patient-survey-services/api/internal/insights"
	"github.com/careloop/patient-survey-services/api/internal/interfaces/http/common"
)

var errBadDate = errors.New("dates must use the YYYY-MM-DD format")

// exportColumns is the header row shared by the CSV and XLSX exports.
var exportColumns = []string{
	"Location",
	"Type",
	"Visits",
	"Ratings",
	"Recommend %",
	"Reception",
	"Professionalism",
	"Understanding",
	"Promptness (Care)",
	"Promptness (Feedback)",
	"Overall",
	"Satisfaction",
}

// exportRow flattens one location's statistics into spreadsheet cells.
func exportRow(stats insights.LocationStats) []string {
	return []string{
		stats.Location.Name,
		common.DisplayLocationType(stats.Location.Type),
		strconv.Itoa(stats.VisitCount),
		strconv.Itoa(stats.RatingCount),
		strconv.Itoa(stats.RecommendRate),
		formatAverage(stats.Averages.Reception),
		formatAverage(stats.Averages.Professionalism),
		formatAverage(stats.Averages.Understanding),
		formatAverage(stats.Averages.PromptnessCare),
		formatAverage(stats.Averages.PromptnessFeedback),
		formatAverage(stats.Averages.Overall),
		formatAverage(stats.Satisfaction),
	}
}

func formatAverage(value float64) string {
	if value == 0 {
		return ""
	}
	return strconv.FormatFloat(value, 'f', 1, 64)
}

// exportFileName builds a unique download name so repeated exports never
// collide in the browser's download directory.
func exportFileName(extension string, now time.Time) string {
	token := uuid.NewString()[:8]
	return fmt.Sprintf("satisfaction-overview-%s-%s.%s", now.Format("20060102"), token, extension)
}
