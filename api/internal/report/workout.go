package report

import (
	"regexp"
	"sort"
	"strings"

	"workout-bot/api/internal/notion"
)

// templateSetKey — составной ключ "упражнение.подход": цифра, символ, цифра.
// Точка снова не экранирована — поведение исходных таблиц сохранено.
var templateSetKey = regexp.MustCompile(`^[1-9].[1-9]$`)

// SetResult — один замер: ключ "1.2" и число повторений.
type SetResult struct {
	Key   string
	Value float64
}

// ExerciseResult — упражнение каталога со всеми его подходами.
type ExerciseResult struct {
	Label string // "1. Подтягивания"
	Sets  []SetResult
}

// WorkoutReport — упражнения в порядке каталога, подходы в порядке
// отсортированных ключей.
type WorkoutReport struct {
	Exercises []ExerciseResult
}

// BuildWorkout строит отчёт последней тренировки: каталог из описания базы
// плюс числовые колонки подходов последней записи.
//
// Ключи подходов сортируются лексикографически. Для одиночных цифр это
// совпадает с числовым порядком; двузначных номеров фильтр ^[1-9].[1-9]$
// всё равно не пропускает.
func BuildWorkout(db notion.Database, row notion.Page) WorkoutReport {
	entries := ParseCatalog(db.PlainDescription())

	results := make([]SetResult, 0, len(row.Properties))
	for key, prop := range row.Properties {
		if prop.Type != "number" || !templateSetKey.MatchString(key) {
			continue
		}
		if prop.Number == nil {
			// подход ещё не записан — не ошибка, просто нет данных
			continue
		}
		results = append(results, SetResult{Key: key, Value: *prop.Number})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Key < results[j].Key })

	rep := WorkoutReport{Exercises: make([]ExerciseResult, 0, len(entries))}
	for _, entry := range entries {
		label := entry.Number + ". " + entry.Name
		// повторная проверка строки каталога: защита от мусора в описании базы
		if !templateExercise.MatchString(label) {
			continue
		}
		ex := ExerciseResult{Label: label}
		prefix := entry.Number + "."
		for _, sr := range results {
			if strings.HasPrefix(sr.Key, prefix) {
				ex.Sets = append(ex.Sets, sr)
			}
		}
		rep.Exercises = append(rep.Exercises, ex)
	}
	return rep
}
