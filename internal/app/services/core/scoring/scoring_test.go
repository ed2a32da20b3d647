package scoring

import (
	"testing"

	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func recordWith(fields map[string]string) *models.ScreeningRecord {
	record := models.NewScreeningRecord()
	record.Merge(fields)
	return record
}

func TestScore(t *testing.T) {
	t.Run("Empty record scores zero and VeryLow", func(t *testing.T) {
		profile := Score(models.NewScreeningRecord())

		assert.Equal(t, 0, profile.Score)
		assert.Equal(t, LevelVeryLow, profile.Level)
		assert.Empty(t, profile.Factors)
	})

	t.Run("Each affirmative answer contributes its documented points", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldSexWithHIVPartner: constvars.AnswerYes,
		}))
		assert.Equal(t, PointsSexWithHIVPartner, profile.Score)

		profile = Score(recordWith(map[string]string{
			constvars.FieldInjectedDrugs: constvars.AnswerYes,
		}))
		assert.Equal(t, PointsInjectedDrugs, profile.Score)

		profile = Score(recordWith(map[string]string{
			constvars.FieldAlcoholBeforeSex: constvars.AnswerYes,
		}))
		assert.Equal(t, PointsAlcoholBeforeSex, profile.Score)
	})

	t.Run("Affirmative matching is case-insensitive and accepts true", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldSexWithoutCondom: "YES",
			constvars.FieldSTISymptoms:      "true",
		}))

		assert.Equal(t, PointsSexWithoutCondom+PointsSTISymptoms, profile.Score)
	})

	t.Run("Negative answers contribute nothing", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldSexWithHIVPartner: constvars.AnswerNo,
			constvars.FieldInjectedDrugs:     constvars.AnswerNo,
		}))

		assert.Equal(t, 0, profile.Score)
	})

	t.Run("Partner count contributes tiered points", func(t *testing.T) {
		assert.Equal(t, 0, Score(recordWith(map[string]string{
			constvars.FieldNumberOfPartners: constvars.PartnerTierOne,
		})).Score)
		assert.Equal(t, PointsPartnersTwoThree, Score(recordWith(map[string]string{
			constvars.FieldNumberOfPartners: constvars.PartnerTierTwoThree,
		})).Score)
		assert.Equal(t, PointsPartnersFourFive, Score(recordWith(map[string]string{
			constvars.FieldNumberOfPartners: constvars.PartnerTierFourFive,
		})).Score)
		assert.Equal(t, PointsPartnersCeiling, Score(recordWith(map[string]string{
			constvars.FieldNumberOfPartners: constvars.PartnerTierCeiling,
		})).Score)
	})

	t.Run("Total is capped at MaxScore", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldSexWithHIVPartner: constvars.AnswerYes,
			constvars.FieldInjectedDrugs:     constvars.AnswerYes,
			constvars.FieldSexWithoutCondom:  constvars.AnswerYes,
			constvars.FieldSTISymptoms:       constvars.AnswerYes,
			constvars.FieldPaidForSex:        constvars.AnswerYes,
			constvars.FieldAlcoholBeforeSex:  constvars.AnswerYes,
			constvars.FieldNumberOfPartners:  constvars.PartnerTierCeiling,
		}))

		assert.Equal(t, MaxScore, profile.Score)
		assert.Equal(t, LevelVeryHigh, profile.Level)
	})

	t.Run("Raising a single answer from No to Yes never decreases the score", func(t *testing.T) {
		base := map[string]string{
			constvars.FieldSexWithHIVPartner: constvars.AnswerNo,
			constvars.FieldInjectedDrugs:     constvars.AnswerNo,
			constvars.FieldSexWithoutCondom:  constvars.AnswerNo,
			constvars.FieldSTISymptoms:       constvars.AnswerNo,
			constvars.FieldPaidForSex:        constvars.AnswerNo,
			constvars.FieldAlcoholBeforeSex:  constvars.AnswerNo,
		}

		baseScore := Score(recordWith(base)).Score
		for key := range base {
			raised := map[string]string{}
			for k, v := range base {
				raised[k] = v
			}
			raised[key] = constvars.AnswerYes
			assert.GreaterOrEqual(t, Score(recordWith(raised)).Score, baseScore,
				"raising %s to Yes must not decrease the score", key)
		}
	})

	t.Run("Level thresholds are evaluated in descending order", func(t *testing.T) {
		assert.Equal(t, LevelVeryLow, levelFor(ThresholdLow-1))
		assert.Equal(t, LevelLow, levelFor(ThresholdLow))
		assert.Equal(t, LevelMedium, levelFor(ThresholdMedium))
		assert.Equal(t, LevelHigh, levelFor(ThresholdHigh))
		assert.Equal(t, LevelVeryHigh, levelFor(ThresholdVeryHigh))
	})

	t.Run("High-risk scenario scores at least the sum of its contributions", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldSexWithHIVPartner: constvars.AnswerYes,
			constvars.FieldSexWithoutCondom:  constvars.AnswerYes,
			constvars.FieldNumberOfPartners:  constvars.PartnerTierCeiling,
		}))

		expected := PointsSexWithHIVPartner + PointsSexWithoutCondom + PointsPartnersCeiling
		assert.GreaterOrEqual(t, profile.Score, expected)
		assert.Contains(t, []string{LevelHigh, LevelVeryHigh}, profile.Level)
	})
}

func TestScoreRecommendations(t *testing.T) {
	t.Run("Unprotected sex triggers condom education first", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldSexWithoutCondom: constvars.AnswerYes,
			constvars.FieldHIVTestResult:    constvars.HIVResultNegative,
		}))

		assert.Equal(t, RecommendationCondomUse, profile.Recommendations[0])
	})

	t.Run("Unknown or absent HIV result triggers testing", func(t *testing.T) {
		profile := Score(models.NewScreeningRecord())
		assert.Contains(t, profile.Recommendations, RecommendationHIVTesting)

		profile = Score(recordWith(map[string]string{
			constvars.FieldHIVTestResult: constvars.HIVResultUnknown,
		}))
		assert.Contains(t, profile.Recommendations, RecommendationHIVTesting)

		profile = Score(recordWith(map[string]string{
			constvars.FieldHIVTestResult: constvars.HIVResultNegative,
		}))
		assert.NotContains(t, profile.Recommendations, RecommendationHIVTesting)
	})

	t.Run("Score at or above the High threshold triggers PrEP discussion", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldSexWithHIVPartner: constvars.AnswerYes,
			constvars.FieldSexWithoutCondom:  constvars.AnswerYes,
		}))

		assert.GreaterOrEqual(t, profile.Score, ThresholdHigh)
		assert.Contains(t, profile.Recommendations, RecommendationConsiderPrEP)
	})

	t.Run("Injecting drug use triggers harm reduction referral", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldInjectedDrugs: constvars.AnswerYes,
		}))

		assert.Contains(t, profile.Recommendations, RecommendationHarmReduction)
	})

	t.Run("Multiple recommendations co-occur in trigger order", func(t *testing.T) {
		profile := Score(recordWith(map[string]string{
			constvars.FieldSexWithoutCondom: constvars.AnswerYes,
			constvars.FieldInjectedDrugs:    constvars.AnswerYes,
		}))

		assert.Equal(t, []string{
			RecommendationCondomUse,
			RecommendationHIVTesting,
			RecommendationConsiderPrEP,
			RecommendationHarmReduction,
		}, profile.Recommendations)
	})
}
