package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	entries := ParseCatalog("1. Pushups\n2. Squats\nNotes:\n3. Lunges")
	require.Equal(t, []CatalogEntry{
		{Number: "1", Name: "Pushups"},
		{Number: "2", Name: "Squats"},
		{Number: "3", Name: "Lunges"},
	}, entries)
}

func TestParseCatalogKeepsInputOrder(t *testing.T) {
	// порядок строк входа, не числовой
	entries := ParseCatalog("3. Выпады\n1. Отжимания")
	require.Equal(t, []CatalogEntry{
		{Number: "3", Name: "Выпады"},
		{Number: "1", Name: "Отжимания"},
	}, entries)
}

func TestParseCatalogSkipsDecoration(t *testing.T) {
	entries := ParseCatalog("План на неделю\n\n1. Подтягивания\n0. не считается\nитого")
	require.Equal(t, []CatalogEntry{{Number: "1", Name: "Подтягивания"}}, entries)
}

func TestParseCatalogSkipsLineWithoutSeparator(t *testing.T) {
	entries := ParseCatalog("1x без разделителя\n2. Приседания")
	require.Equal(t, []CatalogEntry{{Number: "2", Name: "Приседания"}}, entries)
}

func TestParseCatalogEmpty(t *testing.T) {
	require.Empty(t, ParseCatalog(""))
}
