package outcomes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery_RescueCategoriesAlwaysRequireDog(t *testing.T) {
	for _, c := range []FilterCategory{CategoryWater, CategoryMountain, CategoryDisaster} {
		p := BuildQuery(c)
		require.Equal(t, OpAnd, p.Op, "category %s", c)
		assert.True(t, p.Contains(DogClause()), "category %s missing dog clause", c)
		assert.False(t, p.IsAll(), "category %s must filter", c)
	}
}

func TestBuildQuery_ResetAndUnknownAreUniversal(t *testing.T) {
	assert.True(t, BuildQuery(CategoryReset).IsAll())
	assert.True(t, BuildQuery(FilterCategory("avalanche")).IsAll())
	assert.True(t, BuildQuery(ParseCategory("  ")).IsAll())
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryWater, ParseCategory(" Water "))
	assert.Equal(t, CategoryMountain, ParseCategory("mountain"))
	assert.Equal(t, CategoryDisaster, ParseCategory("DISASTER"))
	assert.Equal(t, CategoryReset, ParseCategory("reset"))
	assert.Equal(t, CategoryReset, ParseCategory("bogus"))
}

func TestBuildQuery_Water(t *testing.T) {
	p := BuildQuery(CategoryWater)

	match := Record{
		"animal_type":               "Dog",
		"sex_upon_outcome":          "Intact Female",
		"age_upon_outcome_in_weeks": 26.0,
		"breed":                     "Labrador Retriever Mix",
	}
	assert.True(t, p.Match(match))

	tooOld := match.Clone()
	tooOld["age_upon_outcome_in_weeks"] = 156.5
	assert.False(t, p.Match(tooOld))

	upper := match.Clone()
	upper["age_upon_outcome_in_weeks"] = 156
	assert.True(t, p.Match(upper), "range is inclusive")

	male := match.Clone()
	male["sex_upon_outcome"] = "Intact Male"
	assert.False(t, p.Match(male))

	noAge := match.Clone()
	delete(noAge, "age_upon_outcome_in_weeks")
	assert.False(t, p.Match(noAge))
}

func TestBuildQuery_Mountain_NoAgeClause(t *testing.T) {
	p := BuildQuery(CategoryMountain)

	r := Record{
		"animal_type":      "dog",
		"sex_upon_outcome": "intact male",
		"breed":            "Siberian Husky/German Shepherd",
	}
	assert.True(t, p.Match(r))

	r["breed"] = "Beagle"
	assert.False(t, p.Match(r))
}

func TestBuildQuery_Disaster_BreedCaseInsensitive(t *testing.T) {
	p := BuildQuery(CategoryDisaster)

	r := Record{
		"animal_type":               "DOG",
		"sex_upon_outcome":          "Intact Male",
		"age_upon_outcome_in_weeks": 52,
		"breed":                     "golden retriever",
	}
	assert.True(t, p.Match(r))

	r["age_upon_outcome_in_weeks"] = 19.9
	assert.False(t, p.Match(r))
}

func TestBuildQuery_NonDogsNeverMatch(t *testing.T) {
	cat := Record{
		"animal_type":               "Cat",
		"sex_upon_outcome":          "Intact Male",
		"age_upon_outcome_in_weeks": 52,
		"breed":                     "Rottweiler",
	}
	for _, c := range []FilterCategory{CategoryWater, CategoryMountain, CategoryDisaster} {
		assert.False(t, BuildQuery(c).Match(cat), "category %s", c)
	}
	assert.True(t, BuildQuery(CategoryReset).Match(cat))
}

func TestCategories_IncludesDefault(t *testing.T) {
	opts := Categories()
	require.Len(t, opts, 4)
	assert.Equal(t, DefaultCategory, opts[3].Value)
}
