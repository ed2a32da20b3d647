package utils

import (
	"screening-service/internal/pkg/constvars"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateClientCode derives the quasi-unique client code seeded into the
// platform's unique-identifier attribute: up to two consonants from the last
// name, up to two from the family name, a sex digit, then the birth month,
// day and two-digit year. Returns "" unless all four inputs are present.
// The code is advisory, not globally unique, and is recomputed on every
// identity change.
func GenerateClientCode(familyName, lastName, sex, dateOfBirth string) string {
	familyName = strings.TrimSpace(familyName)
	lastName = strings.TrimSpace(lastName)
	sex = strings.TrimSpace(sex)
	dateOfBirth = strings.TrimSpace(dateOfBirth)
	if familyName == "" || lastName == "" || sex == "" || dateOfBirth == "" {
		return ""
	}

	dob, err := time.Parse(constvars.TrackerDateLayout, dateOfBirth)
	if err != nil {
		return ""
	}

	var sexDigit string
	switch {
	case strings.EqualFold(sex, constvars.SexMale):
		sexDigit = constvars.SexDigitMale
	case strings.EqualFold(sex, constvars.SexFemale):
		sexDigit = constvars.SexDigitFemale
	}

	return consonantPrefix(lastName, 2) +
		consonantPrefix(familyName, 2) +
		sexDigit +
		dob.Format("01") +
		dob.Format("02") +
		dob.Format("06")
}

// consonantPrefix extracts up to max consonant characters from name, falling
// back to the first max raw characters when fewer qualify.
func consonantPrefix(name string, max int) string {
	var consonants []rune
	for _, r := range name {
		if isConsonant(r) {
			consonants = append(consonants, r)
			if len(consonants) == max {
				return string(consonants)
			}
		}
	}

	runes := []rune(name)
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max])
}

func isConsonant(r rune) bool {
	// Khmer consonant block.
	if r >= 0x1780 && r <= 0x17A2 {
		return true
	}
	lower := unicode.ToLower(r)
	if lower < 'a' || lower > 'z' {
		return false
	}
	switch lower {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return true
}
