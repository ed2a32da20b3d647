package metadata

import (
	"screening-service/internal/pkg/constvars"
	"strings"
)

// matchRule binds a lowercased display-name predicate to an internal field
// key. Rules are evaluated top to bottom and the first match wins, so the
// specific rules must stay above the generic ones ("sex with hiv partner"
// before plain "sex").
type matchRule struct {
	internalKey    string
	mustContain    []string
	mustNotContain []string
}

func (r matchRule) matches(loweredName string) bool {
	for _, part := range r.mustContain {
		if !strings.Contains(loweredName, part) {
			return false
		}
	}
	for _, part := range r.mustNotContain {
		if strings.Contains(loweredName, part) {
			return false
		}
	}
	return true
}

var mappingRules = []matchRule{
	{internalKey: constvars.FieldGenderIdentity, mustContain: []string{"gender", "identify"}},
	{internalKey: constvars.FieldSexWithHIVPartner, mustContain: []string{"sex", "hiv", "partner"}},
	{internalKey: constvars.FieldSexWithoutCondom, mustContain: []string{"condom"}},
	{internalKey: constvars.FieldNumberOfPartners, mustContain: []string{"number", "partner"}},
	{internalKey: constvars.FieldPaidForSex, mustContain: []string{"paid", "sex"}},
	{internalKey: constvars.FieldAlcoholBeforeSex, mustContain: []string{"alcohol"}},
	{internalKey: constvars.FieldInjectedDrugs, mustContain: []string{"inject"}},
	{internalKey: constvars.FieldSTISymptoms, mustContain: []string{"symptom"}},
	{internalKey: constvars.FieldHIVTestResult, mustContain: []string{"hiv", "result"}},
	{internalKey: constvars.FieldEverTestedForHIV, mustContain: []string{"hiv", "test"}},
	{internalKey: constvars.FieldDateOfBirth, mustContain: []string{"birth"}},
	{internalKey: constvars.FieldSex, mustContain: []string{"sex"}, mustNotContain: []string{"birth"}},
	{internalKey: constvars.FieldFamilyName, mustContain: []string{"family"}},
	{internalKey: constvars.FieldLastName, mustContain: []string{"last"}},
	{internalKey: constvars.FieldClientCode, mustContain: []string{"client", "code"}},
	{internalKey: constvars.FieldClientCode, mustContain: []string{"unique"}},
	{internalKey: constvars.FieldPhoneNumber, mustContain: []string{"phone"}},
	{internalKey: constvars.FieldProvince, mustContain: []string{"province"}},
	{internalKey: constvars.FieldDistrict, mustContain: []string{"district"}},
	{internalKey: constvars.FieldScreeningDate, mustContain: []string{"date"}, mustNotContain: []string{"birth"}},
	{internalKey: constvars.FieldRiskScore, mustContain: []string{"risk", "score"}},
	{internalKey: constvars.FieldRiskLevel, mustContain: []string{"risk", "level"}},
	{internalKey: constvars.FieldRiskRecommendations, mustContain: []string{"recommend"}},
	{internalKey: constvars.FieldConsentToFollowUp, mustContain: []string{"consent"}},
	{internalKey: constvars.FieldReferredToFacility, mustContain: []string{"refer"}},
	{internalKey: constvars.FieldAdditionalInfo, mustContain: []string{"additional"}},
	{internalKey: constvars.FieldAdditionalInfo, mustContain: []string{"comment"}},
}

// fallbackAttributeIDs seeds the identity attributes for deployments whose
// program metadata omits them. Program-level definitions resolved from the
// platform override these entries key by key.
var fallbackAttributeIDs = map[string]string{
	constvars.FieldFamilyName:  "ZkNZOxS24k7",
	constvars.FieldLastName:    "pQYCiuosBnZ",
	constvars.FieldSex:         "CklPZdOd6H1",
	constvars.FieldDateOfBirth: "NI0QRzJvQ0k",
	constvars.FieldClientCode:  "dVZxRGdmnUs",
	constvars.FieldPhoneNumber: "fctSQp5nAYl",
	constvars.FieldProvince:    "VqEFza8wbwA",
	constvars.FieldDistrict:    "Qo571yj6Zcn",
}
