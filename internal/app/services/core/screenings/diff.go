package screenings

import (
	"screening-service/internal/app/models"
	"screening-service/internal/pkg/dto/tracker"
	"sort"
)

// BuildSyncDiff compares the record's new values against the freshly fetched
// event's current values and returns only the fields actually worth writing:
// defined, non-empty after normalization, and different from what the
// platform holds. Entries are ordered by internal key so the outgoing payload
// is deterministic.
func BuildSyncDiff(dataElements map[string]models.FieldMapping, record *models.ScreeningRecord, currentEvent *tracker.Event) []models.DiffEntry {
	currentValues := make(map[string]string, len(currentEvent.DataValues))
	for _, dataValue := range currentEvent.DataValues {
		currentValues[dataValue.DataElement] = dataValue.Value
	}

	internalKeys := make([]string, 0, len(dataElements))
	for internalKey := range dataElements {
		internalKeys = append(internalKeys, internalKey)
	}
	sort.Strings(internalKeys)

	var diff []models.DiffEntry
	for _, internalKey := range internalKeys {
		mapping := dataElements[internalKey]
		newValue, include := NormalizeValue(mapping, record.Get(internalKey))
		if !include {
			continue
		}
		if currentValues[mapping.ExternalID] == newValue {
			continue
		}
		diff = append(diff, models.DiffEntry{
			ExternalID: mapping.ExternalID,
			Value:      newValue,
		})
	}
	return diff
}
