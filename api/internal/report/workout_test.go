package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"workout-bot/api/internal/notion"
)

func numberProp(v float64) notion.Property {
	return notion.Property{Type: "number", Number: &v}
}

func nullNumberProp() notion.Property {
	return notion.Property{Type: "number"}
}

func workoutDatabase(description string) notion.Database {
	return notion.Database{
		Title:       []notion.RichText{{PlainText: "Тренировка. Турник"}},
		Description: []notion.RichText{{PlainText: description}},
	}
}

func TestBuildWorkoutGroupsSetsByExercise(t *testing.T) {
	db := workoutDatabase("1. Pushups\n2. Squats")
	row := notion.Page{Properties: map[string]notion.Property{
		"2.1": numberProp(8),
		"1.2": numberProp(12),
		"1.1": numberProp(10),
	}}

	rep := BuildWorkout(db, row)
	require.Equal(t, WorkoutReport{Exercises: []ExerciseResult{
		{Label: "1. Pushups", Sets: []SetResult{{Key: "1.1", Value: 10}, {Key: "1.2", Value: 12}}},
		{Label: "2. Squats", Sets: []SetResult{{Key: "2.1", Value: 8}}},
	}}, rep)
}

func TestBuildWorkoutKeepsEmptyExercise(t *testing.T) {
	db := workoutDatabase("1. Подтягивания\n2. Брусья")
	row := notion.Page{Properties: map[string]notion.Property{
		"1.1": numberProp(10),
	}}

	rep := BuildWorkout(db, row)
	require.Len(t, rep.Exercises, 2)
	require.Equal(t, "2. Брусья", rep.Exercises[1].Label)
	require.Empty(t, rep.Exercises[1].Sets)
}

func TestBuildWorkoutFiltersFieldShapes(t *testing.T) {
	db := workoutDatabase("1. Подтягивания")
	row := notion.Page{Properties: map[string]notion.Property{
		"1.1":     numberProp(10),
		"Дата":    {Type: "date", Date: &notion.DateValue{Start: "2024-05-01"}},
		"Вес":     numberProp(82), // число, но не ключ подхода
		"10.1":    numberProp(5),  // двузначный номер не проходит фильтр
		"1.2.3":   numberProp(7),  // лишний сегмент
		"п.2":     numberProp(7), // не цифра в начале
		"Общее":   {Type: "formula", Formula: &notion.Property{Type: "number"}},
		"Заметка": {Type: "title"},
	}}

	rep := BuildWorkout(db, row)
	require.Equal(t, []SetResult{{Key: "1.1", Value: 10}}, rep.Exercises[0].Sets)
}

func TestBuildWorkoutSkipsUnrecordedSets(t *testing.T) {
	db := workoutDatabase("1. Подтягивания")
	row := notion.Page{Properties: map[string]notion.Property{
		"1.1": numberProp(10),
		"1.2": nullNumberProp(), // подход ещё не записан
	}}

	rep := BuildWorkout(db, row)
	require.Equal(t, []SetResult{{Key: "1.1", Value: 10}}, rep.Exercises[0].Sets)
}

func TestWorkoutReportMessage(t *testing.T) {
	db := workoutDatabase("1. Pushups\n2. Squats")
	row := notion.Page{Properties: map[string]notion.Property{
		"1.1": numberProp(10),
		"1.2": numberProp(12),
		"2.1": numberProp(8),
	}}

	msg := BuildWorkout(db, row).Message()
	require.Equal(t, "1. Pushups\n1.1 -> 10\n1.2 -> 12\n2. Squats\n2.1 -> 8\n", msg)
}
