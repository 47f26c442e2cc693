package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kenandcrys/auth-me/models"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "san jose", NormalizeQuery("  San José "))
	assert.Equal(t, "new york", NormalizeQuery("New York"))
	assert.Equal(t, "", NormalizeQuery("   "))
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("seattle", "seattle"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", ""))

	// One substitution across seven runes.
	assert.InDelta(t, 1.0-1.0/7.0, Similarity("seattle", "seattze"), 1e-9)

	typo := Similarity("portland", "protland")
	far := Similarity("portland", "miami")
	assert.Greater(t, typo, far)
}

func TestScoreSpotIgnoresBlankLocationFields(t *testing.T) {
	blank := models.Spot{Name: "zzzzzz"}
	cmCity := createMatcher(uniqueFieldValues([]models.Spot{blank}, "city"))
	cmState := createMatcher(uniqueFieldValues([]models.Spot{blank}, "state"))

	assert.Equal(t, 0, scoreSpot(NormalizeQuery("seattle"), blank, cmCity, cmState))
}

func TestScoreSpotMatchesCity(t *testing.T) {
	spot := models.Spot{Name: "Cozy Loft", City: "Seattle", State: "WA", Country: "USA"}
	spots := []models.Spot{spot}
	cmCity := createMatcher(uniqueFieldValues(spots, "city"))
	cmState := createMatcher(uniqueFieldValues(spots, "state"))

	assert.Greater(t, scoreSpot(NormalizeQuery("Seattle"), spot, cmCity, cmState), 0)
}
