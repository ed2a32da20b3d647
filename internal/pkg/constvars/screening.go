package constvars

// Internal semantic field keys. The metadata resolver maps external field
// definitions onto these; every other component speaks only these keys.
const (
	FieldFamilyName  = "familyName"
	FieldLastName    = "lastName"
	FieldSex         = "sex"
	FieldDateOfBirth = "dateOfBirth"
	FieldClientCode  = "clientCode"
	FieldPhoneNumber = "phoneNumber"
	FieldProvince    = "province"
	FieldDistrict    = "district"

	FieldGenderIdentity       = "genderIdentity"
	FieldSexWithHIVPartner    = "sexWithHIVPartner"
	FieldSexWithoutCondom     = "sexWithoutCondom"
	FieldNumberOfPartners     = "numberOfSexualPartners"
	FieldSTISymptoms          = "stiSymptoms"
	FieldInjectedDrugs        = "injectedDrugs"
	FieldPaidForSex           = "paidOrReceivedForSex"
	FieldAlcoholBeforeSex     = "alcoholDrugsBeforeSex"
	FieldHIVTestResult        = "hivTestResult"
	FieldEverTestedForHIV     = "everTestedForHIV"
	FieldScreeningDate        = "screeningDate"
	FieldRiskScore            = "riskScore"
	FieldRiskLevel            = "riskLevel"
	FieldRiskRecommendations = "riskRecommendations"
	FieldConsentToFollowUp   = "consentToFollowUp"
	FieldReferredToFacility  = "referredToFacility"
	FieldAdditionalInfo      = "additionalInfo"
)

const (
	AnswerYes     = "Yes"
	AnswerNo      = "No"
	AnswerUnknown = "Unknown"
)

const (
	SexMale   = "Male"
	SexFemale = "Female"
)

const (
	SexDigitMale   = "1"
	SexDigitFemale = "2"
)

const (
	HIVResultPositive = "Positive"
	HIVResultNegative = "Negative"
	HIVResultUnknown  = "Unknown"
)

// Partner-count tiers as collected on the form. PartnerTierCeiling is the
// explicit "6 or more" ceiling tier.
const (
	PartnerTierOne      = "1"
	PartnerTierTwoThree = "2-3"
	PartnerTierFourFive = "4-5"
	PartnerTierCeiling  = "6+"
)

const (
	MinScreeningAge = 10
	MaxScreeningAge = 120
)

const (
	SaveLockKeyFormat       = "screening:save-lock:%s"
	DraftKeyFormat          = "screening:draft:%s"
	MappingSnapshotRedisKey = "screening:mapping-snapshot"
)
