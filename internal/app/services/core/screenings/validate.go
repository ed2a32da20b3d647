package screenings

import (
	"fmt"
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/utils"
	"strings"
	"time"
)

var requiredIdentityFields = []string{
	constvars.FieldFamilyName,
	constvars.FieldLastName,
	constvars.FieldSex,
	constvars.FieldDateOfBirth,
	constvars.FieldProvince,
	constvars.FieldDistrict,
}

// Answer fields restricted to Yes/No when present.
var yesNoFields = []string{
	constvars.FieldSexWithHIVPartner,
	constvars.FieldSexWithoutCondom,
	constvars.FieldSTISymptoms,
	constvars.FieldInjectedDrugs,
	constvars.FieldPaidForSex,
	constvars.FieldAlcoholBeforeSex,
	constvars.FieldConsentToFollowUp,
	constvars.FieldReferredToFacility,
}

// ValidateRecord collects every problem with the record before any network
// call is made. An empty result means the record is saveable.
func ValidateRecord(record *models.ScreeningRecord) []string {
	var problems []string

	if record.OrgUnit == "" {
		problems = append(problems, "orgUnit is required")
	}
	for _, field := range requiredIdentityFields {
		if strings.TrimSpace(record.Get(field)) == "" {
			problems = append(problems, fmt.Sprintf("%s is required", field))
		}
	}

	return append(problems, ValidateAnswers(record)...)
}

// ValidateAnswers checks value formats and enumerations only, without the
// required-field checks. Partial updates run this variant since they touch a
// subset of fields.
func ValidateAnswers(record *models.ScreeningRecord) []string {
	var problems []string

	if sex := record.Get(constvars.FieldSex); sex != "" &&
		!strings.EqualFold(sex, constvars.SexMale) && !strings.EqualFold(sex, constvars.SexFemale) {
		problems = append(problems, fmt.Sprintf("%s must be either '%s' or '%s'",
			constvars.FieldSex, constvars.SexMale, constvars.SexFemale))
	}

	if birthDate := record.Get(constvars.FieldDateOfBirth); birthDate != "" {
		dob, err := time.Parse(constvars.TrackerDateLayout, birthDate)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a valid date", constvars.FieldDateOfBirth))
		} else if dob.After(time.Now()) {
			problems = append(problems, fmt.Sprintf("%s must not be in the future", constvars.FieldDateOfBirth))
		} else {
			age := utils.CalculateAge(birthDate)
			if age < constvars.MinScreeningAge || age > constvars.MaxScreeningAge {
				problems = append(problems, fmt.Sprintf("age must be between %d and %d",
					constvars.MinScreeningAge, constvars.MaxScreeningAge))
			}
		}
	}

	for _, field := range yesNoFields {
		if answer := record.Get(field); answer != "" &&
			!strings.EqualFold(answer, constvars.AnswerYes) && !strings.EqualFold(answer, constvars.AnswerNo) {
			problems = append(problems, fmt.Sprintf("%s must be either '%s' or '%s'",
				field, constvars.AnswerYes, constvars.AnswerNo))
		}
	}

	if answer := record.Get(constvars.FieldEverTestedForHIV); answer != "" &&
		!strings.EqualFold(answer, constvars.AnswerYes) && !strings.EqualFold(answer, constvars.AnswerNo) &&
		!strings.EqualFold(answer, constvars.AnswerUnknown) {
		problems = append(problems, fmt.Sprintf("%s must be one of '%s', '%s' or '%s'",
			constvars.FieldEverTestedForHIV, constvars.AnswerYes, constvars.AnswerNo, constvars.AnswerUnknown))
	}

	if result := record.Get(constvars.FieldHIVTestResult); result != "" &&
		!strings.EqualFold(result, constvars.HIVResultPositive) && !strings.EqualFold(result, constvars.HIVResultNegative) &&
		!strings.EqualFold(result, constvars.HIVResultUnknown) {
		problems = append(problems, fmt.Sprintf("%s must be one of '%s', '%s' or '%s'",
			constvars.FieldHIVTestResult, constvars.HIVResultPositive, constvars.HIVResultNegative, constvars.HIVResultUnknown))
	}

	if tier := record.Get(constvars.FieldNumberOfPartners); tier != "" &&
		tier != constvars.PartnerTierOne && tier != constvars.PartnerTierTwoThree &&
		tier != constvars.PartnerTierFourFive && tier != constvars.PartnerTierCeiling {
		problems = append(problems, fmt.Sprintf("%s must be one of '%s', '%s', '%s' or '%s'",
			constvars.FieldNumberOfPartners, constvars.PartnerTierOne, constvars.PartnerTierTwoThree,
			constvars.PartnerTierFourFive, constvars.PartnerTierCeiling))
	}

	if screeningDate := record.Get(constvars.FieldScreeningDate); screeningDate != "" {
		parsed, err := time.Parse(constvars.TrackerDateLayout, screeningDate)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a valid date", constvars.FieldScreeningDate))
		} else if parsed.After(time.Now()) {
			problems = append(problems, fmt.Sprintf("%s must not be in the future", constvars.FieldScreeningDate))
		}
	}

	return problems
}
