package report

import (
	"regexp"
	"strings"
)

// templateExercise — строка каталога: цифра 1-9 и хотя бы один символ за ней.
// Точка не экранирована намеренно, как в исходной схеме таблиц.
var templateExercise = regexp.MustCompile(`^[1-9].`)

// CatalogEntry — одна строка каталога упражнений: ("1", "Подтягивания").
type CatalogEntry struct {
	Number string
	Name   string
}

// ParseCatalog разбирает текстовый каталог упражнений из описания базы:
// нумерованный список, по упражнению на строку. Строки, не начинающиеся с
// номера (заголовки, пустые), молча пропускаются. Порядок записей — порядок
// строк входа, не числовой.
func ParseCatalog(text string) []CatalogEntry {
	var entries []CatalogEntry
	for _, line := range strings.Split(text, "\n") {
		if !templateExercise.MatchString(line) {
			continue
		}
		num, name, ok := strings.Cut(line, ". ")
		if !ok {
			continue
		}
		entries = append(entries, CatalogEntry{Number: num, Name: name})
	}
	return entries
}
