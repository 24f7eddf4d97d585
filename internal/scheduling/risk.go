package scheduling

import (
	"strings"
	"time"

	"clinic-appointment-service/internal/domain/entity"
)

// RiskLevel is the categorical tier derived from the risk score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RiskAssessment is derived and ephemeral; it is never persisted.
type RiskAssessment struct {
	Score int       `json:"score"`
	Level RiskLevel `json:"level"`
}

// Markers the scoring formula scans history for. These are the clinic's
// Turkish terms and must not be translated — the scores have to stay
// compatible with the historical data.
const (
	riskMarkerOperation = "operasyon"
	riskMarkerHighRisk  = "yüksek risk"
)

// CalculateRisk maps a patient's appointment history (and optional age) to a
// bounded score and tier. The weighted-rule formula is fixed for
// compatibility; aside from the most-recent-visit lookup it is independent
// of history order.
//
//	base 10 (empty) / 20, recency +40/+25/+10 past 365/180/90 days,
//	+15 per no-show, -10 at five completed visits, +15 on an operation in
//	history, +10 on a high-risk note, +5 at five records, +5 at age 40,
//	clamped to [0, 100]. High at 70, medium at 40.
func CalculateRisk(history []entity.Appointment, age *int, now time.Time) RiskAssessment {
	score := 20
	if len(history) == 0 {
		score = 10
	}

	if last := MostRecent(history); last != nil {
		if lastDate, err := time.Parse("2006-01-02", NormalizeDate(last.Date)); err == nil {
			daysSinceLast := now.Sub(lastDate).Hours() / 24

			switch {
			case daysSinceLast > 365:
				score += 40
			case daysSinceLast > 180:
				score += 25
			case daysSinceLast > 90:
				score += 10
			}
		}

		noShows := 0
		completed := 0
		for _, apt := range history {
			if apt.IsNoShow() {
				noShows++
			}
			if apt.IsCompleted() {
				completed++
			}
		}
		score += noShows * 15
		if completed >= 5 {
			score -= 10
		}
	}

	for _, apt := range history {
		if strings.Contains(strings.ToLower(apt.Type), riskMarkerOperation) {
			score += 15
			break
		}
	}

	for _, apt := range history {
		if strings.Contains(strings.ToLower(apt.Notes), riskMarkerHighRisk) {
			score += 10
			break
		}
	}

	if len(history) >= 5 {
		score += 5
	}

	if age != nil && *age >= 40 {
		score += 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	level := RiskLevelLow
	switch {
	case score >= 70:
		level = RiskLevelHigh
	case score >= 40:
		level = RiskLevelMedium
	}

	return RiskAssessment{Score: score, Level: level}
}
