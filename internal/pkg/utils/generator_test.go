package utils

import (
	"strings"
	"testing"

	"screening-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.True(t, strings.HasPrefix(first, constvars.REQUEST_ID_PREFIX))
	assert.NotEqual(t, first, second)
}

func TestGenerateClientCode(t *testing.T) {
	t.Run("Derives the documented code for a male client born 1995-03-07", func(t *testing.T) {
		code := GenerateClientCode("Dara", "Sok", constvars.SexMale, "1995-03-07")
		assert.Equal(t, "SkDr1030795", code)
	})

	t.Run("Sex digit differs between male and female", func(t *testing.T) {
		male := GenerateClientCode("Dara", "Sok", constvars.SexMale, "1995-03-07")
		female := GenerateClientCode("Dara", "Sok", constvars.SexFemale, "1995-03-07")

		assert.NotEqual(t, male, female)
		assert.True(t, strings.HasSuffix(male, "1030795"))
		assert.True(t, strings.HasSuffix(female, "2030795"))
	})

	t.Run("Sex comparison is case-insensitive", func(t *testing.T) {
		assert.Equal(t,
			GenerateClientCode("Dara", "Sok", constvars.SexMale, "1995-03-07"),
			GenerateClientCode("Dara", "Sok", "male", "1995-03-07"),
		)
	})

	t.Run("Deterministic for identical inputs", func(t *testing.T) {
		first := GenerateClientCode("Dara", "Sok", constvars.SexFemale, "2001-12-31")
		second := GenerateClientCode("Dara", "Sok", constvars.SexFemale, "2001-12-31")
		assert.Equal(t, first, second)
	})

	t.Run("Any missing input yields an empty code", func(t *testing.T) {
		assert.Empty(t, GenerateClientCode("", "Sok", constvars.SexMale, "1995-03-07"))
		assert.Empty(t, GenerateClientCode("Dara", "", constvars.SexMale, "1995-03-07"))
		assert.Empty(t, GenerateClientCode("Dara", "Sok", "", "1995-03-07"))
		assert.Empty(t, GenerateClientCode("Dara", "Sok", constvars.SexMale, ""))
	})

	t.Run("Unparseable birth date yields an empty code", func(t *testing.T) {
		assert.Empty(t, GenerateClientCode("Dara", "Sok", constvars.SexMale, "07/03/1995"))
	})

	t.Run("Khmer script names contribute their consonants", func(t *testing.T) {
		code := GenerateClientCode("សុខ", "ចាន់", constvars.SexMale, "1990-01-15")

		assert.NotEmpty(t, code)
		assert.True(t, strings.HasSuffix(code, "1011590"))
	})
}

func TestConsonantPrefix(t *testing.T) {
	t.Run("Takes the first two consonants", func(t *testing.T) {
		assert.Equal(t, "Sk", consonantPrefix("Sok", 2))
		assert.Equal(t, "Dr", consonantPrefix("Dara", 2))
	})

	t.Run("Falls back to the raw prefix when consonants run short", func(t *testing.T) {
		assert.Equal(t, "Ao", consonantPrefix("Ao", 2))
		assert.Equal(t, "Ea", consonantPrefix("Ea", 2))
	})

	t.Run("Short names are used whole", func(t *testing.T) {
		assert.Equal(t, "O", consonantPrefix("O", 2))
	})
}
