package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Screening messages
	CreateScreeningSuccessMessage   = "screening record created successfully"
	UpdateScreeningSuccessMessage   = "screening record updated successfully"
	PartialScreeningUpdateMessage   = "screening record updated with some values ignored by the platform"
	NoChangesScreeningMessage       = "no changes to save"
	UpdateAppliedNothingMessage     = "the platform did not apply any of the submitted values"
	GetScreeningSuccessMessage      = "get screening record successfully"
	ScoreScreeningSuccessMessage    = "risk profile computed successfully"
	ClientCodePreviewSuccessMessage = "client code generated successfully"

	// Metadata messages
	GetMappingsSuccessMessage     = "get field mappings successfully"
	RefreshMappingsSuccessMessage = "field mappings refreshed successfully"
	GetOrgUnitsSuccessMessage     = "get organisation units successfully"
)
