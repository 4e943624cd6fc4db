package evaluate

import (
	"math"
)

// Level is the qualitative verdict on forecast accuracy.
type Level string

const (
	LevelInsufficient Level = "insufficient"
	LevelAcceptable   Level = "acceptable"
	LevelGood         Level = "good"
	LevelExcellent    Level = "excellent"
)

const (
	recExcellent    = "Prediction accuracy is excellent and ready for practical use."
	recGood         = "Prediction accuracy is good and suitable for practical use with room for improvement."
	recAcceptable   = "Prediction accuracy is minimally acceptable. Use with caution and consider improving the model."
	recInsufficient = "Prediction accuracy is insufficient. The model needs significant improvement."
)

// Assessment is the tiered verdict derived from the accuracy metrics. The
// overall score is the minimum of the per-metric scores so a single bad
// dimension caps the verdict regardless of the others.
type Assessment struct {
	Level               Level   `json:"level"`
	Acceptable          bool    `json:"acceptable"`
	OverallScore        int     `json:"overall_score"`
	CorrelationScore    int     `json:"correlation_score"`
	RSquaredScore       int     `json:"r_squared_score"`
	NormalizedRMSEScore int     `json:"normalized_rmse_score"`
	MAERatioScore       int     `json:"mae_ratio_score"`
	MAERatio            float64 `json:"mae_ratio"`
	Recommendation      string  `json:"recommendation"`
}

type direction int

const (
	higherIsBetter direction = iota
	lowerIsBetter
)

// thresholds defines the three ordered tier cutoffs for one metric. For
// lowerIsBetter metrics the cutoffs are upper bounds.
type thresholds struct {
	excellent  float64
	good       float64
	acceptable float64
	dir        direction
}

var (
	correlationThresholds    = thresholds{0.95, 0.80, 0.60, higherIsBetter}
	rSquaredThresholds       = thresholds{0.90, 0.70, 0.50, higherIsBetter}
	normalizedRMSEThresholds = thresholds{0.05, 0.10, 0.20, lowerIsBetter}
	maeRatioThresholds       = thresholds{0.02, 0.05, 0.10, lowerIsBetter}
)

// score maps a metric value onto 0..3. Lower-is-better metrics are scored on
// the complement so one inclusive ">=" rule covers both directions. NaN fails
// every comparison and scores 0.
func (t thresholds) score(value float64) int {
	excellent, good, acceptable := t.excellent, t.good, t.acceptable
	if t.dir == lowerIsBetter {
		value = 1.0 - value
		excellent = 1.0 - excellent
		good = 1.0 - good
		acceptable = 1.0 - acceptable
	}
	switch {
	case value >= excellent:
		return 3
	case value >= good:
		return 2
	case value >= acceptable:
		return 1
	}
	return 0
}

// Assess converts accuracy metrics into per-metric scores and an overall
// verdict. The correlation is scored on its absolute value. The mae ratio is
// mae over the ground truth range and is +Inf when the range is zero.
func Assess(correlation, rSquared, normalizedRMSE, mae, dataRange float64) *Assessment {
	maeRatio := math.Inf(1)
	if dataRange != 0 {
		maeRatio = mae / dataRange
	}

	a := &Assessment{
		CorrelationScore:    correlationThresholds.score(math.Abs(correlation)),
		RSquaredScore:       rSquaredThresholds.score(rSquared),
		NormalizedRMSEScore: normalizedRMSEThresholds.score(normalizedRMSE),
		MAERatioScore:       maeRatioThresholds.score(maeRatio),
		MAERatio:            maeRatio,
	}
	a.OverallScore = min(a.CorrelationScore, a.RSquaredScore, a.NormalizedRMSEScore, a.MAERatioScore)

	switch a.OverallScore {
	case 3:
		a.Level = LevelExcellent
		a.Acceptable = true
		a.Recommendation = recExcellent
	case 2:
		a.Level = LevelGood
		a.Acceptable = true
		a.Recommendation = recGood
	case 1:
		a.Level = LevelAcceptable
		a.Acceptable = true
		a.Recommendation = recAcceptable
	default:
		a.Level = LevelInsufficient
		a.Acceptable = false
		a.Recommendation = recInsufficient
	}
	return a
}
