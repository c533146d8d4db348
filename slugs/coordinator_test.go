package slugs

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var personSlugPattern = regexp.MustCompile(`^jean-dupont-[0-9][A-Z]{9}$`)

func neverExists(string) (bool, error) { return false, nil }

func TestUniqueSlug_TitleHasNoSuffix(t *testing.T) {
	c := NewCoordinator(rand.NewSource(1))

	slug, err := c.UniqueSlug("Guide complet de l'IA", false, neverExists)
	require.NoError(t, err)
	assert.Equal(t, Slugify("Guide complet de l'IA"), slug)
}

func TestUniqueSlug_PersonShape(t *testing.T) {
	c := NewCoordinator(rand.NewSource(1))

	slug, err := c.UniqueSlug("Jean Dupont", true, neverExists)
	require.NoError(t, err)
	assert.Regexp(t, personSlugPattern, slug)
}

func TestUniqueSlug_RetriesExactlyOnceOnCollision(t *testing.T) {
	c := NewCoordinator(rand.NewSource(42))

	var candidates []string
	exists := func(candidate string) (bool, error) {
		candidates = append(candidates, candidate)
		return len(candidates) == 1, nil
	}

	slug, err := c.UniqueSlug("Jean Dupont", true, exists)
	require.NoError(t, err)

	// One collision, one regeneration, no third attempt.
	require.Len(t, candidates, 2)
	assert.NotEqual(t, candidates[0], candidates[1])
	assert.Equal(t, candidates[1], slug)
	assert.Regexp(t, personSlugPattern, slug)
}

func TestUniqueSlug_EmptySource(t *testing.T) {
	c := NewCoordinator(rand.NewSource(1))

	_, err := c.UniqueSlug("   ", true, neverExists)
	assert.ErrorIs(t, err, ErrEmptySource)

	_, err = c.UniqueSlug("", false, neverExists)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestUniqueSlug_ExistsErrorPropagates(t *testing.T) {
	c := NewCoordinator(rand.NewSource(1))

	failing := func(string) (bool, error) { return false, assert.AnError }
	_, err := c.UniqueSlug("Jean Dupont", true, failing)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestIsSuffixed(t *testing.T) {
	assert.True(t, IsSuffixed("jean-dupont", "jean-dupont-3ABCDEFGHI"))
	assert.False(t, IsSuffixed("jean-dupont", "jean-dupont"))
	assert.False(t, IsSuffixed("jean-dupont", "jean-dupont-ABCDEFGHIJ"), "suffix must start with a digit")
	assert.False(t, IsSuffixed("jean-dupont", "jean-dupont-3abcdefghi"), "suffix letters must be uppercase")
	assert.False(t, IsSuffixed("jean-dupont", "jean-martin-3ABCDEFGHI"))
}

func TestPolicyCurrent(t *testing.T) {
	person, ok := PolicyFor(KindProvider)
	require.True(t, ok)
	assert.True(t, person.WithSuffix)
	assert.True(t, person.Current("jean-dupont-3ABCDEFGHI", "Jean Dupont"))
	assert.False(t, person.Current("jean-dupont-3ABCDEFGHI", "Jean Martin"))
	assert.False(t, person.Current("", "Jean Dupont"))

	title, ok := PolicyFor(KindService)
	require.True(t, ok)
	assert.False(t, title.WithSuffix)
	assert.True(t, title.Current("conseil-en-ia", "Conseil en IA"))
	assert.False(t, title.Current("conseil-en-ia", "Conseil en data"))
}
