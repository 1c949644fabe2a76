package outcomes

import "strings"

// FilterCategory define los tipos de rescate seleccionables en el dashboard.
// @Enum water, mountain, disaster, reset
type FilterCategory string

const (
	CategoryWater    FilterCategory = "water"
	CategoryMountain FilterCategory = "mountain"
	CategoryDisaster FilterCategory = "disaster"
	CategoryReset    FilterCategory = "reset"
)

// DefaultCategory es la selección inicial del control de filtros.
const DefaultCategory = CategoryReset

// CategoryOption es una opción del control de filtros (value + label).
type CategoryOption struct {
	Value FilterCategory `json:"value"`
	Label string         `json:"label"`
}

func Categories() []CategoryOption {
	return []CategoryOption{
		{Value: CategoryWater, Label: "Water Rescue"},
		{Value: CategoryMountain, Label: "Mountain/Wilderness Rescue"},
		{Value: CategoryDisaster, Label: "Disaster / Individual Tracking"},
		{Value: CategoryReset, Label: "Reset (All)"},
	}
}

// ParseCategory normaliza el input. Cualquier valor desconocido es reset (sin filtro).
func ParseCategory(s string) FilterCategory {
	switch c := FilterCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryWater, CategoryMountain, CategoryDisaster:
		return c
	default:
		return CategoryReset
	}
}

const (
	sexIntactFemale = "intact female"
	sexIntactMale   = "intact male"
)

var (
	breedsWater = []string{
		"Labrador Retriever", "Chesapeake Bay Retriever", "Newfoundland",
	}
	breedsMountain = []string{
		"German Shepherd", "Alaskan Malamute", "Old English Sheepdog", "Siberian Husky", "Rottweiler",
	}
	breedsDisaster = []string{
		"Doberman Pinscher", "German Shepherd", "Golden Retriever", "Bloodhound", "Rottweiler",
	}
)

// DogClause es la cláusula presente en toda categoría distinta de reset.
func DogClause() Predicate {
	return EqualFold(FieldAnimalType, "dog")
}

// BuildQuery traduce la categoría a un predicado compuesto.
// Es total: categorías desconocidas se tratan como reset.
func BuildQuery(c FilterCategory) Predicate {
	switch c {
	case CategoryWater:
		return And(
			DogClause(),
			EqualFold(FieldSex, sexIntactFemale),
			Between(FieldAgeInWeeks, 26, 156),
			MatchAny(FieldBreed, breedsWater...),
		)
	case CategoryMountain:
		return And(
			DogClause(),
			EqualFold(FieldSex, sexIntactMale),
			MatchAny(FieldBreed, breedsMountain...),
		)
	case CategoryDisaster:
		return And(
			DogClause(),
			EqualFold(FieldSex, sexIntactMale),
			Between(FieldAgeInWeeks, 20, 300),
			MatchAny(FieldBreed, breedsDisaster...),
		)
	default:
		return All()
	}
}
