package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"github.com/kenandcrys/auth-me/dto"
	"github.com/kenandcrys/auth-me/errors"
	"github.com/kenandcrys/auth-me/models"
)

// NormalizeQuery strips accents and lowercases free-text search input.
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Similarity returns levenshtein-based similarity in [0,1]; 1 means equal.
func Similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// uniqueFieldValues collects the distinct normalized values of a location
// field across all spots, for seeding the closest-match dictionaries.
func uniqueFieldValues(spots []models.Spot, field string) []string {
	seen := make(map[string]bool)

	for _, spot := range spots {
		var value string
		switch field {
		case "city":
			value = spot.City
		case "state":
			value = spot.State
		case "country":
			value = spot.Country
		}
		if value != "" {
			seen[NormalizeQuery(value)] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	return values
}

func scoreSpot(query string, spot models.Spot, cmCity, cmState *closestmatch.ClosestMatch) int {
	score := 0

	normalizedName := NormalizeQuery(spot.Name)
	if strings.Contains(query, normalizedName) || Similarity(query, normalizedName) > 0.7 {
		score += 20
	}

	for _, word := range strings.Fields(query) {
		if Similarity(word, normalizedName) > 0.5 {
			score += 5
			break
		}
	}

	// Blank location fields never match: Closest can return "" on an
	// empty dictionary, and Contains(query, "") is always true.
	if city := NormalizeQuery(spot.City); city != "" && cmCity.Closest(query) == city {
		score += 13
	}
	if state := NormalizeQuery(spot.State); state != "" && cmState.Closest(query) == state {
		score += 4
	}
	if country := NormalizeQuery(spot.Country); country != "" && strings.Contains(query, country) {
		score += 2
	}

	return score
}

// SearchSpots scores every spot against the free-text query and returns
// the matches ordered by descending relevance.
func SearchSpots(db *gorm.DB, query string) ([]dto.ScoredSpot, error) {
	var spots []models.Spot
	if err := db.Preload("SpotImages").Find(&spots).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load spots", err)
	}

	normalizedQuery := NormalizeQuery(query)
	cmCity := createMatcher(uniqueFieldValues(spots, "city"))
	cmState := createMatcher(uniqueFieldValues(spots, "state"))

	scored := make(chan dto.ScoredSpot, len(spots))
	var wg sync.WaitGroup

	for _, spot := range spots {
		wg.Add(1)
		go func(spot models.Spot) {
			defer wg.Done()
			score := scoreSpot(normalizedQuery, spot, cmCity, cmState)
			if score > 0 {
				scored <- dto.ScoredSpot{Spot: spot, Score: score}
			}
		}(spot)
	}

	go func() {
		wg.Wait()
		close(scored)
	}()

	var results []dto.ScoredSpot
	for s := range scored {
		results = append(results, s)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}
