package screenings

import (
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/tracker"
	"sort"
	"strings"
)

// buildAttributePayload maps every record field present in the merged
// attribute mapping into {attribute, value} pairs. Family and last name are
// force-included even when normalization would drop them, since the platform
// rejects entities without them.
func buildAttributePayload(snapshot *models.MappingSnapshot, record *models.ScreeningRecord) []tracker.AttributeValue {
	internalKeys := make([]string, 0, len(snapshot.Attributes))
	for internalKey := range snapshot.Attributes {
		internalKeys = append(internalKeys, internalKey)
	}
	sort.Strings(internalKeys)

	var attributes []tracker.AttributeValue
	for _, internalKey := range internalKeys {
		mapping := snapshot.Attributes[internalKey]
		value, include := NormalizeValue(mapping, record.Get(internalKey))
		if !include {
			if internalKey != constvars.FieldFamilyName && internalKey != constvars.FieldLastName {
				continue
			}
			value = record.Get(internalKey)
		}
		attributes = append(attributes, tracker.AttributeValue{
			Attribute: mapping.ExternalID,
			Value:     value,
		})
	}
	return attributes
}

// buildDataValues maps every stage-field entry through normalization into
// {dataElement, value} pairs.
func buildDataValues(snapshot *models.MappingSnapshot, record *models.ScreeningRecord) []tracker.DataValue {
	internalKeys := make([]string, 0, len(snapshot.DataElements))
	for internalKey := range snapshot.DataElements {
		internalKeys = append(internalKeys, internalKey)
	}
	sort.Strings(internalKeys)

	var dataValues []tracker.DataValue
	for _, internalKey := range internalKeys {
		mapping := snapshot.DataElements[internalKey]
		value, include := NormalizeValue(mapping, record.Get(internalKey))
		if !include {
			continue
		}
		dataValues = append(dataValues, tracker.DataValue{
			DataElement: mapping.ExternalID,
			Value:       value,
		})
	}
	return dataValues
}

func diffToDataValues(diff []models.DiffEntry) []tracker.DataValue {
	dataValues := make([]tracker.DataValue, 0, len(diff))
	for _, entry := range diff {
		dataValues = append(dataValues, tracker.DataValue{
			DataElement: entry.ExternalID,
			Value:       entry.Value,
		})
	}
	return dataValues
}

// denormalizeValue converts a platform-stored value back to the vocabulary
// clients submit, so re-validation and re-scoring of a merged record see the
// same answers the client would have sent.
func denormalizeValue(mapping models.FieldMapping, storedValue string) string {
	switch mapping.ValueType {
	case constvars.TrackerValueTypeTrueOnly, constvars.TrackerValueTypeBoolean:
		if strings.EqualFold(storedValue, "true") {
			return constvars.AnswerYes
		}
		return constvars.AnswerNo
	case constvars.TrackerValueTypeOptionSet:
		lowerCode := strings.ToLower(storedValue)
		for label, code := range mapping.OptionCodes {
			if code == storedValue && label != lowerCode {
				return label
			}
		}
	}
	return storedValue
}

// recordFromEvent rebuilds a ScreeningRecord from a fetched event by reverse
// mapping its data values through the snapshot. Values the snapshot cannot
// name are dropped.
func recordFromEvent(snapshot *models.MappingSnapshot, event *tracker.Event) *models.ScreeningRecord {
	externalToInternal := make(map[string]string, len(snapshot.DataElements))
	for internalKey, mapping := range snapshot.DataElements {
		externalToInternal[mapping.ExternalID] = internalKey
	}

	record := models.NewScreeningRecord()
	record.OrgUnit = event.OrgUnit
	record.ExternalRecordID = event.Event
	record.ExternalEntityID = event.TrackedEntityInstance
	record.ExternalEnrollmentID = event.Enrollment

	fields := make(map[string]string)
	for _, dataValue := range event.DataValues {
		if internalKey, found := externalToInternal[dataValue.DataElement]; found {
			fields[internalKey] = denormalizeValue(snapshot.DataElements[internalKey], dataValue.Value)
		}
	}
	if event.EventDate != "" {
		fields[constvars.FieldScreeningDate] = event.EventDate
	}
	record.Merge(fields)
	return record
}
