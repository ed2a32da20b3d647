package constvars

const (
	RegexDateYYYYMMDD       = `^\d{4}-\d{2}-\d{2}$`
	RegexNumeric            = `^\d+$`
	RegexPhoneNumberGeneral = `^\+?[0-9]\d{7,14}$`
)
