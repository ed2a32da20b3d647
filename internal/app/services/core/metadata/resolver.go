package metadata

import (
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/tracker"
	"strings"
	"time"
)

// ResolveMappings converts the two raw schema sources into one mapping
// snapshot. Stage-level data elements and entity-level attributes are
// resolved independently; each internal key is assigned at most once per
// table and definitions matching no rule are dropped. The function is pure.
func ResolveMappings(
	stageFields []tracker.ProgramStageDataElement,
	entityAttributes []tracker.ProgramTrackedEntityAttribute,
	targetLocale string,
) *models.MappingSnapshot {
	snapshot := &models.MappingSnapshot{
		DataElements: make(map[string]models.FieldMapping),
		Attributes:   make(map[string]models.FieldMapping),
		Labels:       make(map[string]string),
		ResolvedAt:   time.Now(),
	}

	for key, externalID := range fallbackAttributeIDs {
		snapshot.Attributes[key] = models.FieldMapping{
			InternalKey: key,
			ExternalID:  externalID,
			ValueType:   constvars.TrackerValueTypeText,
		}
	}

	for _, stageField := range stageFields {
		definition := stageField.DataElement
		internalKey := matchInternalKey(definition.DisplayName, snapshot.DataElements)
		if internalKey == "" {
			continue
		}
		snapshot.DataElements[internalKey] = buildFieldMapping(internalKey, definition.ID, definition.ValueType, definition.OptionSet)
		snapshot.Labels[internalKey] = resolveLabel(definition.DisplayName, definition.Translations, targetLocale)
	}

	assignedAttributes := make(map[string]models.FieldMapping)
	for _, entityAttribute := range entityAttributes {
		definition := entityAttribute.TrackedEntityAttribute
		internalKey := matchInternalKey(definition.DisplayName, assignedAttributes)
		if internalKey == "" {
			continue
		}
		mapping := buildFieldMapping(internalKey, definition.ID, definition.ValueType, definition.OptionSet)
		assignedAttributes[internalKey] = mapping
		snapshot.Attributes[internalKey] = mapping
		snapshot.Labels[internalKey] = resolveLabel(definition.DisplayName, definition.Translations, targetLocale)
	}

	return snapshot
}

// matchInternalKey runs the ordered rule table against a display name. A key
// already assigned in this table is skipped, so a second definition whose
// name also matches is silently ignored.
func matchInternalKey(displayName string, assigned map[string]models.FieldMapping) string {
	loweredName := strings.ToLower(displayName)
	for _, rule := range mappingRules {
		if _, taken := assigned[rule.internalKey]; taken {
			continue
		}
		if rule.matches(loweredName) {
			return rule.internalKey
		}
	}
	return ""
}

func buildFieldMapping(internalKey, externalID, valueType string, optionSet *tracker.OptionSet) models.FieldMapping {
	if valueType == "" {
		valueType = constvars.TrackerValueTypeText
	}

	mapping := models.FieldMapping{
		InternalKey: internalKey,
		ExternalID:  externalID,
		ValueType:   valueType,
	}

	if optionSet != nil && len(optionSet.Options) > 0 {
		mapping.OptionCodes = make(map[string]string, len(optionSet.Options)*2)
		for _, option := range optionSet.Options {
			mapping.OptionCodes[strings.ToLower(option.Code)] = option.Code
			if option.Name != "" {
				mapping.OptionCodes[strings.ToLower(option.Name)] = option.Code
			}
		}
	}

	return mapping
}

func resolveLabel(displayName string, translations []tracker.Translation, targetLocale string) string {
	for _, translation := range translations {
		if translation.Locale == targetLocale && translation.Value != "" {
			return translation.Value
		}
	}
	return displayName
}
