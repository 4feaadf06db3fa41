package report

import (
	"sort"

	"workout-bot/api/internal/notion"
)

// Latest выбирает самую свежую запись по created_time. Сервер и так просят
// отсортировать по убыванию даты, но полагаться на это нельзя — сортируем
// ещё раз. Стабильная сортировка: при равных временах побеждает запись,
// пришедшая в ответе раньше.
func Latest(rows []notion.Page) (notion.Page, error) {
	if len(rows) == 0 {
		return notion.Page{}, &EmptyResultError{What: "database query returned no rows"}
	}
	sorted := make([]notion.Page, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedTime.After(sorted[j].CreatedTime)
	})
	return sorted[0], nil
}
