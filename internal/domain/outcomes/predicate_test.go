package outcomes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualFold_ToleratesCaseAndWhitespace(t *testing.T) {
	p := DogClause()
	for _, v := range []string{"Dog", "DOG", " Dog ", "\tdog\n"} {
		assert.True(t, p.Match(Record{"animal_type": v}), "value %q", v)
	}
	for _, v := range []string{"Dogs", "hot dog", ""} {
		assert.False(t, p.Match(Record{"animal_type": v}), "value %q", v)
	}
	assert.False(t, p.Match(Record{}))

	sex := EqualFold(FieldSex, "intact female")
	assert.True(t, sex.Match(Record{FieldSex: "  Intact   Female "}))
	assert.False(t, sex.Match(Record{FieldSex: "Spayed Female"}))
}

func TestValuePattern(t *testing.T) {
	assert.Equal(t, `^\s*intact\s+male\s*$`, EqualFold(FieldSex, "intact male").ValuePattern())
}

func TestMatchAny_IsUnanchoredAndLiteral(t *testing.T) {
	p := MatchAny(FieldBreed, "German Shepherd", "St. Bernard")

	assert.True(t, p.Match(Record{"breed": "German Shepherd Mix"}))
	assert.True(t, p.Match(Record{"breed": "Labrador Retriever/german shepherd"}))
	assert.True(t, p.Match(Record{"breed": "St. Bernard"}))
	// el punto es literal, no comodín
	assert.False(t, p.Match(Record{"breed": "StX Bernard"}))
	assert.False(t, p.Match(Record{"breed": "Beagle"}))
	assert.False(t, p.Match(Record{}))
}

func TestBetween_NumericTypes(t *testing.T) {
	p := Between(FieldAgeInWeeks, 20, 300)

	assert.True(t, p.Match(Record{FieldAgeInWeeks: 20}))
	assert.True(t, p.Match(Record{FieldAgeInWeeks: int64(300)}))
	assert.True(t, p.Match(Record{FieldAgeInWeeks: json.Number("52.5")}))
	assert.False(t, p.Match(Record{FieldAgeInWeeks: "52"}))
	assert.False(t, p.Match(Record{FieldAgeInWeeks: nil}))
}

func TestAnd_EmptyIsAll(t *testing.T) {
	assert.True(t, And().IsAll())
	assert.True(t, And(All(), All()).IsAll())
	assert.False(t, And(All(), DogClause()).IsAll())
}

func TestRecord_Lookups(t *testing.T) {
	r := Record{
		"name":         "  ",
		"breed":        "Beagle",
		"location_lat": 30.1,
		"count":        int32(3),
	}

	_, ok := r.String("name")
	assert.False(t, ok, "blank counts as absent")
	assert.Equal(t, "Unknown", r.StringOr("name", "Unknown"))
	assert.Equal(t, "Beagle", r.StringOr("breed", "Unknown"))
	assert.Equal(t, 30.1, r.FloatOr("location_lat", 30.75))
	assert.Equal(t, -97.48, r.FloatOr("location_long", -97.48))
	assert.Equal(t, "3", r.StringOr("count", ""))
}

func TestRecord_WithoutRowKey_DoesNotMutate(t *testing.T) {
	r := Record{"_id": "abc", "breed": "Beagle"}
	clean := r.WithoutRowKey()

	assert.False(t, clean.Has(RowKeyField))
	assert.True(t, r.Has(RowKeyField))
}

func TestMatchAny_CompilesEachPatternOnce(t *testing.T) {
	first := patternRegexp("Great Pyrenees")
	assert.Same(t, first, patternRegexp("Great Pyrenees"))
	assert.NotSame(t, first, patternRegexp("Akita"))

	p := MatchAny(FieldBreed, "Great Pyrenees")
	for i := 0; i < 3; i++ {
		assert.True(t, p.Match(Record{"breed": "great pyrenees mix"}))
	}
	assert.Same(t, first, patternRegexp("Great Pyrenees"))
}
