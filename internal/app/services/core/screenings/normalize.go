package screenings

import (
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"strings"
)

// NormalizeValue converts a record value into the string actually sent on the
// wire for the given field mapping. The second return reports whether the
// field belongs in the payload at all:
//   - TRUE_ONLY emits "true" when affirmative, otherwise the field is omitted
//     entirely (never sent as "false")
//   - BOOLEAN always emits "true"/"false" once a value is present
//   - OPTION_SET resolves a human label to its backing code case-insensitively
//     by code or name, falling back to the raw label
//   - everything else passes through, omitted when empty
func NormalizeValue(mapping models.FieldMapping, rawValue string) (string, bool) {
	rawValue = strings.TrimSpace(rawValue)

	switch mapping.ValueType {
	case constvars.TrackerValueTypeTrueOnly:
		if isAffirmative(rawValue) {
			return "true", true
		}
		return "", false
	case constvars.TrackerValueTypeBoolean:
		if rawValue == "" {
			return "", false
		}
		if isAffirmative(rawValue) {
			return "true", true
		}
		return "false", true
	case constvars.TrackerValueTypeOptionSet:
		if rawValue == "" {
			return "", false
		}
		if code, found := mapping.OptionCodes[strings.ToLower(rawValue)]; found {
			return code, true
		}
		return rawValue, true
	}

	if rawValue == "" {
		return "", false
	}
	return rawValue, true
}

func isAffirmative(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "true":
		return true
	}
	return false
}
