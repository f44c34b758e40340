package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grosz-dev/grosz/internal/model"
)

func TestDecodeRows(t *testing.T) {
	values := [][]any{
		{"id", "data", "kategoria", "opis", "kwota"},
		{"1", "2024-01-05", "Paliwo", "Orlen", "-200"},
		{float64(2), "2024-02-10", "Bez kategorii", "Biedronka", -55.40},
		{"3", "2024-03-15", "Wynagrodzenie", "Wypłata", "8 000,00"},
	}

	txns, err := DecodeRows(values)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, 1, txns[0].ID)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), txns[0].Date)
	assert.InDelta(t, -200, txns[0].Amount, 0.001)

	assert.Equal(t, 2, txns[1].ID, "numeric cells decode too")
	assert.InDelta(t, -55.40, txns[1].Amount, 0.001)

	assert.InDelta(t, 8000, txns[2].Amount, 0.001, "formatted amounts normalize")
}

func TestDecodeRowsMessyHeader(t *testing.T) {
	values := [][]any{
		{" ID ", "Data", "KATEGORIA", "Opis", "Kwota"},
		{"1", "2024-01-05", "Paliwo", "Orlen", "-200"},
	}

	txns, err := DecodeRows(values)
	require.NoError(t, err)
	assert.Len(t, txns, 1)
}

func TestDecodeRowsMissingColumn(t *testing.T) {
	values := [][]any{
		{"id", "data", "opis", "kwota"},
		{"1", "2024-01-05", "Orlen", "-200"},
	}

	_, err := DecodeRows(values)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kategoria")
}

func TestDecodeRowsCoercion(t *testing.T) {
	values := [][]any{
		{"id", "data", "kategoria", "opis", "kwota"},
		{"garbage", "2024-01-05", "Paliwo", "bad id", "-10"},
		{"-7", "2024-01-06", "Paliwo", "negative id", "-10"},
		{"4", "not-a-date", "Paliwo", "skipped row", "-10"},
		{"5", "2024-01-08", "Paliwo", "bad amount", "???"},
	}

	txns, err := DecodeRows(values)
	require.NoError(t, err)
	require.Len(t, txns, 3, "the bad-date row is dropped, nothing else")

	assert.Equal(t, 0, txns[0].ID, "unparseable id reads as sentinel")
	assert.Equal(t, 0, txns[1].ID, "negative id reads as sentinel")
	assert.InDelta(t, 0, txns[2].Amount, 0.001, "unparseable amount reads as zero")
}

func TestDecodeRowsShortAndEmpty(t *testing.T) {
	txns, err := DecodeRows(nil)
	require.NoError(t, err)
	assert.Empty(t, txns)

	// Trailing empty cells are omitted by the API; missing cells read as
	// zero values.
	values := [][]any{
		{"id", "data", "kategoria", "opis", "kwota"},
		{"1", "2024-01-05", "Paliwo"},
	}

	txns, err = DecodeRows(values)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "", txns[0].Description)
	assert.InDelta(t, 0, txns[0].Amount, 0.001)
}

func TestEncodeRows(t *testing.T) {
	ledger := []model.Transaction{
		{ID: 3, Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Category: model.CategorySalary, Description: "Wypłata", Amount: 8000},
	}

	values := EncodeRows(ledger)

	require.Len(t, values, 2)
	assert.Equal(t, Header, values[0])
	assert.Equal(t, []any{3, "2024-03-15", model.CategorySalary, "Wypłata", 8000.0}, values[1])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ledger := []model.Transaction{
		{ID: 1, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Category: "Paliwo", Description: "Orlen", Amount: -200},
		{ID: 2, Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Category: model.CategoryUncategorized, Description: "Biedronka", Amount: -55.40},
	}

	got, err := DecodeRows(EncodeRows(ledger))
	require.NoError(t, err)
	assert.Equal(t, ledger, got)
}
