package screenings

import (
	"testing"

	"screening-service/internal/app/models"
	"screening-service/internal/pkg/constvars"
	"screening-service/internal/pkg/dto/tracker"

	"github.com/stretchr/testify/assert"
)

func diffMappings() map[string]models.FieldMapping {
	return map[string]models.FieldMapping{
		constvars.FieldSTISymptoms: {
			InternalKey: constvars.FieldSTISymptoms,
			ExternalID:  "de001",
			ValueType:   constvars.TrackerValueTypeTrueOnly,
		},
		constvars.FieldAdditionalInfo: {
			InternalKey: constvars.FieldAdditionalInfo,
			ExternalID:  "de002",
			ValueType:   constvars.TrackerValueTypeText,
		},
		constvars.FieldHIVTestResult: {
			InternalKey: constvars.FieldHIVTestResult,
			ExternalID:  "de003",
			ValueType:   constvars.TrackerValueTypeOptionSet,
			OptionCodes: map[string]string{"positive": "POS", "negative": "NEG"},
		},
	}
}

func eventWith(dataValues ...tracker.DataValue) *tracker.Event {
	return &tracker.Event{Event: "ev001", DataValues: dataValues}
}

func TestBuildSyncDiff(t *testing.T) {
	t.Run("Diff is empty when mapped values equal the current values field-for-field", func(t *testing.T) {
		record := models.NewScreeningRecord()
		record.Merge(map[string]string{
			constvars.FieldSTISymptoms:    constvars.AnswerYes,
			constvars.FieldAdditionalInfo: "follow up next month",
			constvars.FieldHIVTestResult:  "Negative",
		})
		current := eventWith(
			tracker.DataValue{DataElement: "de001", Value: "true"},
			tracker.DataValue{DataElement: "de002", Value: "follow up next month"},
			tracker.DataValue{DataElement: "de003", Value: "NEG"},
		)

		assert.Empty(t, BuildSyncDiff(diffMappings(), record, current))
	})

	t.Run("Equal affirmative values are excluded", func(t *testing.T) {
		record := models.NewScreeningRecord()
		record.Merge(map[string]string{constvars.FieldSTISymptoms: constvars.AnswerYes})
		current := eventWith(tracker.DataValue{DataElement: "de001", Value: "true"})

		assert.Empty(t, BuildSyncDiff(diffMappings(), record, current))
	})

	t.Run("Changed values are included with their normalized form", func(t *testing.T) {
		record := models.NewScreeningRecord()
		record.Merge(map[string]string{constvars.FieldHIVTestResult: "Positive"})
		current := eventWith(tracker.DataValue{DataElement: "de003", Value: "NEG"})

		diff := BuildSyncDiff(diffMappings(), record, current)
		assert.Equal(t, []models.DiffEntry{{ExternalID: "de003", Value: "POS"}}, diff)
	})

	t.Run("Empty new values are never included", func(t *testing.T) {
		record := models.NewScreeningRecord()
		current := eventWith(tracker.DataValue{DataElement: "de002", Value: "existing note"})

		assert.Empty(t, BuildSyncDiff(diffMappings(), record, current))
	})

	t.Run("New value with no current counterpart is included", func(t *testing.T) {
		record := models.NewScreeningRecord()
		record.Merge(map[string]string{constvars.FieldAdditionalInfo: "new note"})

		diff := BuildSyncDiff(diffMappings(), record, eventWith())
		assert.Equal(t, []models.DiffEntry{{ExternalID: "de002", Value: "new note"}}, diff)
	})

	t.Run("Negative TRUE_ONLY answers never enter the diff", func(t *testing.T) {
		record := models.NewScreeningRecord()
		record.Merge(map[string]string{constvars.FieldSTISymptoms: constvars.AnswerNo})
		current := eventWith(tracker.DataValue{DataElement: "de001", Value: "true"})

		assert.Empty(t, BuildSyncDiff(diffMappings(), record, current))
	})

	t.Run("Entries are ordered by internal key", func(t *testing.T) {
		record := models.NewScreeningRecord()
		record.Merge(map[string]string{
			constvars.FieldSTISymptoms:    constvars.AnswerYes,
			constvars.FieldAdditionalInfo: "note",
			constvars.FieldHIVTestResult:  "Positive",
		})

		diff := BuildSyncDiff(diffMappings(), record, eventWith())
		assert.Equal(t, []models.DiffEntry{
			{ExternalID: "de002", Value: "note"},
			{ExternalID: "de003", Value: "POS"},
			{ExternalID: "de001", Value: "true"},
		}, diff)
	})
}
