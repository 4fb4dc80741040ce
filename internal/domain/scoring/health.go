package scoring

import (
	"fmt"
	"strings"

	"github.com/bleready/bleready/internal/domain"
)

const (
	passThreshold        = 0.9
	conditionalThreshold = 0.7
)

// RateHealth classifies component scores. Any zero score is a hard failure
// and is checked before the mean is compared against the thresholds.
func RateHealth(scores domain.ComponentScores) domain.SystemHealthRating {
	values := scores.Values()

	var sum float64
	hardFailure := false
	for _, v := range values {
		sum += v
		if v == 0 {
			hardFailure = true
		}
	}
	mean := sum / float64(len(values))

	var rating domain.Rating
	switch {
	case hardFailure:
		rating = domain.RatingFail
	case mean >= passThreshold:
		rating = domain.RatingPass
	case mean >= conditionalThreshold:
		rating = domain.RatingConditional
	default:
		rating = domain.RatingFail
	}

	return domain.SystemHealthRating{
		Rating:          rating,
		Score:           mean,
		ComponentScores: scores,
		Summary:         healthSummary(rating, mean, scores),
	}
}

func healthSummary(rating domain.Rating, mean float64, scores domain.ComponentScores) string {
	pct := int(mean*100 + 0.5)
	switch rating {
	case domain.RatingPass:
		return fmt.Sprintf("System meets all quality thresholds and is ready for deployment (overall score %d%%).", pct)
	case domain.RatingConditional:
		return fmt.Sprintf("System is functional but has issues that need attention before deployment (overall score %d%%).", pct)
	}

	var failed []string
	for _, s := range scores.Named() {
		if s.Score == 0 {
			failed = append(failed, s.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Sprintf("System has critical failures in %d component(s): %s (overall score %d%%).", len(failed), strings.Join(failed, ", "), pct)
	}
	return fmt.Sprintf("System falls below minimum quality thresholds (overall score %d%%).", pct)
}
