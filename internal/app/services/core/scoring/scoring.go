package scoring

import (
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"strings"
)

// Point values are additive and never negative. The total is capped at
// MaxScore. Exported as named constants so tests can pin exact scores.
const (
	PointsSexWithHIVPartner = 30
	PointsInjectedDrugs     = 25
	PointsSexWithoutCondom  = 20
	PointsSTISymptoms       = 15
	PointsPaidForSex        = 15
	PointsAlcoholBeforeSex  = 10

	PointsPartnersTwoThree = 10
	PointsPartnersFourFive = 15
	PointsPartnersCeiling  = 20

	MaxScore = 100
)

// Level thresholds, evaluated on the capped score in descending order.
const (
	ThresholdVeryHigh = 50
	ThresholdHigh     = 35
	ThresholdMedium   = 20
	ThresholdLow      = 10
)

const (
	LevelVeryLow  = "VeryLow"
	LevelLow      = "Low"
	LevelMedium   = "Medium"
	LevelHigh     = "High"
	LevelVeryHigh = "VeryHigh"
)

const (
	FactorSexWithHIVPartner = "sex with a partner living with HIV"
	FactorInjectedDrugs     = "history of injecting drug use"
	FactorSexWithoutCondom  = "sex without a condom"
	FactorSTISymptoms       = "current STI symptoms"
	FactorPaidForSex        = "paid or received money for sex"
	FactorAlcoholBeforeSex  = "alcohol or drug use before sex"
	FactorMultiplePartners  = "multiple sexual partners"
)

const (
	RecommendationCondomUse     = "provide condom education and supplies"
	RecommendationHIVTesting    = "offer an HIV test"
	RecommendationConsiderPrEP  = "discuss PrEP eligibility"
	RecommendationHarmReduction = "refer to harm reduction services"
)

// Score derives the risk profile from the answer set. It is pure: no I/O,
// no record mutation, safe to call on every change.
func Score(record *models.ScreeningRecord) *models.RiskProfile {
	profile := &models.RiskProfile{}

	if isAffirmative(record.Get(constvars.FieldSexWithHIVPartner)) {
		profile.Score += PointsSexWithHIVPartner
		profile.Factors = append(profile.Factors, FactorSexWithHIVPartner)
	}
	if isAffirmative(record.Get(constvars.FieldInjectedDrugs)) {
		profile.Score += PointsInjectedDrugs
		profile.Factors = append(profile.Factors, FactorInjectedDrugs)
	}
	if isAffirmative(record.Get(constvars.FieldSexWithoutCondom)) {
		profile.Score += PointsSexWithoutCondom
		profile.Factors = append(profile.Factors, FactorSexWithoutCondom)
	}
	if isAffirmative(record.Get(constvars.FieldSTISymptoms)) {
		profile.Score += PointsSTISymptoms
		profile.Factors = append(profile.Factors, FactorSTISymptoms)
	}
	if isAffirmative(record.Get(constvars.FieldPaidForSex)) {
		profile.Score += PointsPaidForSex
		profile.Factors = append(profile.Factors, FactorPaidForSex)
	}
	if isAffirmative(record.Get(constvars.FieldAlcoholBeforeSex)) {
		profile.Score += PointsAlcoholBeforeSex
		profile.Factors = append(profile.Factors, FactorAlcoholBeforeSex)
	}

	if partnerPoints := partnerTierPoints(record.Get(constvars.FieldNumberOfPartners)); partnerPoints > 0 {
		profile.Score += partnerPoints
		profile.Factors = append(profile.Factors, FactorMultiplePartners)
	}

	if profile.Score > MaxScore {
		profile.Score = MaxScore
	}
	profile.Level = levelFor(profile.Score)

	if isAffirmative(record.Get(constvars.FieldSexWithoutCondom)) {
		profile.Recommendations = append(profile.Recommendations, RecommendationCondomUse)
	}
	if needsTesting(record.Get(constvars.FieldHIVTestResult)) {
		profile.Recommendations = append(profile.Recommendations, RecommendationHIVTesting)
	}
	if profile.Score >= ThresholdHigh {
		profile.Recommendations = append(profile.Recommendations, RecommendationConsiderPrEP)
	}
	if isAffirmative(record.Get(constvars.FieldInjectedDrugs)) {
		profile.Recommendations = append(profile.Recommendations, RecommendationHarmReduction)
	}

	return profile
}

func isAffirmative(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true":
		return true
	}
	return false
}

func partnerTierPoints(tier string) int {
	switch strings.TrimSpace(tier) {
	case constvars.PartnerTierTwoThree:
		return PointsPartnersTwoThree
	case constvars.PartnerTierFourFive:
		return PointsPartnersFourFive
	case constvars.PartnerTierCeiling:
		return PointsPartnersCeiling
	}
	return 0
}

func levelFor(score int) string {
	switch {
	case score >= ThresholdVeryHigh:
		return LevelVeryHigh
	case score >= ThresholdHigh:
		return LevelHigh
	case score >= ThresholdMedium:
		return LevelMedium
	case score >= ThresholdLow:
		return LevelLow
	}
	return LevelVeryLow
}

// needsTesting is true when no conclusive HIV result is on record.
func needsTesting(result string) bool {
	switch strings.ToLower(strings.TrimSpace(result)) {
	case strings.ToLower(constvars.HIVResultPositive), strings.ToLower(constvars.HIVResultNegative):
		return false
	}
	return true
}
