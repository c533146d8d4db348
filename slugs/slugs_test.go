package slugs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify_StripsAccentsAndLowercases(t *testing.T) {
	assert.Equal(t, "cafe-du-progres", Slugify("Café du Progrès"))
	assert.Equal(t, "eleonore-francois", Slugify("Éléonore François"))
	assert.Equal(t, "l'œuvre", Slugify("L'Œuvre"))
}

func TestSlugify_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a-b", Slugify("  a   b  "))
	assert.Equal(t, "un-deux-trois", Slugify("un\tdeux\n trois"))
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{"Café du Progrès", "Guide complet de l'IA", "  a   b  "}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugify should be a fixed point on %q", once)
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	first := Slugify("Conseil en Stratégie Numérique")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slugify("Conseil en Stratégie Numérique"))
	}
}

func TestSlugify_EmptyAndBlank(t *testing.T) {
	assert.Equal(t, "", Slugify(""))
	assert.Equal(t, "", Slugify("   \t  "))
}

func TestSlugify_KeepsNonWhitespacePunctuation(t *testing.T) {
	// Punctuation beyond whitespace passes through unchanged.
	assert.Equal(t, "guide-complet-de-l'ia", Slugify("Guide complet de l'IA"))
}
