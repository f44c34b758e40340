package model

// Category labels are the exact strings persisted on the sheet, so they
// stay in Polish; a few carry trailing spaces inherited from the bank
// exports and must not be trimmed.
const (
	// CategoryUncategorized is the fallback for imports and invalid input.
	CategoryUncategorized = "Bez kategorii"
	// CategoryIrrelevant is excluded from spend and income aggregates.
	CategoryIrrelevant = "Nieistotne"
	// CategoryRecurringSavings is excluded from spend and income aggregates.
	CategoryRecurringSavings = "Regularne oszczędzanie"
	// CategorySalary is treated as an inflow aggregate.
	CategorySalary = "Wynagrodzenie"
	// CategoryIncome is treated as an inflow aggregate.
	CategoryIncome = "Wpływy"
	// CategoryOtherIncome is treated as an inflow aggregate.
	CategoryOtherIncome = "Wpływy - inne"
)

// categories is the closed, ordered category list. It is not
// user-extensible; anything outside it is coerced to CategoryUncategorized.
var categories = []string{
	CategoryIrrelevant,
	CategorySalary,
	CategoryIncome,
	"Elektronika",
	"Wyjścia i wydarzenia",
	"Żywność i chemia domowa",
	"Przejazdy",
	"Sport i hobby ",
	CategoryOtherIncome,
	"Odzież i obuwie",
	"Podróże i wyjazdy",
	"ZaMieszkanie",
	"Zdrowie i uroda",
	CategoryRecurringSavings,
	"Serwis i części",
	"Multimedia, książki i prasa",
	"Wypłata gotówki",
	"Opłaty i odsetki",
	"Auto i transport - inne",
	"Czynsz i wynajem",
	"Paliwo",
	"Akcesoria i wyposażenie ",
	"Jedzenie poza domem",
	"Prezenty i wsparcie",
	CategoryUncategorized,
}

// Categories returns the ordered category list.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether name is one of the known categories.
func ValidCategory(name string) bool {
	for _, c := range categories {
		if c == name {
			return true
		}
	}
	return false
}

// CoerceCategory maps arbitrary input onto the closed category list,
// falling back to CategoryUncategorized.
func CoerceCategory(name string) string {
	if ValidCategory(name) {
		return name
	}
	return CategoryUncategorized
}

// InflowCategory reports whether a category counts toward income totals.
func InflowCategory(name string) bool {
	switch name {
	case CategorySalary, CategoryIncome, CategoryOtherIncome:
		return true
	}
	return false
}

// AggregateCategory reports whether a category participates in
// spend/income aggregates at all.
func AggregateCategory(name string) bool {
	switch name {
	case CategoryIrrelevant, CategoryRecurringSavings:
		return false
	}
	return true
}
