package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Languages(t *testing.T) {
	for _, lang := range []string{"dutch", "nl", "Dutch", "english", "en"} {
		n, err := New(lang)
		require.NoError(t, err, lang)
		require.NotNil(t, n)
	}

	_, err := New("klingon")
	assert.Error(t, err)
}

func TestNewDefault_IsDutch(t *testing.T) {
	assert.Equal(t, "dutch", NewDefault().Language())
}

func TestNormalize_LowercasesAndStripsNoise(t *testing.T) {
	n := NewDefault()

	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("!!! ... ???"))

	out := n.Normalize("Hoe? Kan. IK!")
	assert.Equal(t, "hoe kan ik", out)
}

func TestNormalize_Idempotent(t *testing.T) {
	n := NewDefault()

	inputs := []string{
		"Hoe kan ik dit probleem oplossen?",
		"Ik heb LAST van frustrerende problemen...",
		"waar kan ik dit kopen? #korting @winkel",
		"gewoon een dagelijks verhaal",
		"oplossingen vergelijken werkt",
	}

	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)
		assert.Equal(t, once, twice, "input %q", input)
	}
}

func TestNormalize_IdempotentEnglish(t *testing.T) {
	n, err := New("english")
	require.NoError(t, err)

	inputs := []string{
		"How can I solve this problem?",
		"Comparing solutions that actually work",
	}
	for _, input := range inputs {
		once := n.Normalize(input)
		assert.Equal(t, once, n.Normalize(once), "input %q", input)
	}
}

func TestNormalize_StemsInflections(t *testing.T) {
	n := NewDefault()

	// Singular and plural collapse to the same stem, so indicator
	// patterns match inflected content.
	assert.Equal(t, n.Normalize("probleem"), n.Normalize("problemen"))
	assert.Equal(t, n.Normalize("oplossing"), n.Normalize("oplossingen"))
}

func TestNormalize_DutchFixtureContainsPatterns(t *testing.T) {
	n := NewDefault()

	text := n.Normalize("Hoe kan ik dit probleem oplossen?")
	assert.True(t, strings.Contains(text, n.Normalize("hoe kan ik")), "normalized: %q", text)
	assert.True(t, strings.Contains(text, n.Normalize("probleem")), "normalized: %q", text)
}

func TestNormalize_SingleSpaces(t *testing.T) {
	n := NewDefault()

	out := n.Normalize("een    twee\t\tdrie\n\nvier")
	assert.NotContains(t, out, "  ")
	assert.Len(t, strings.Fields(out), 4)
}
