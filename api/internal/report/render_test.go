package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkoutMessageFromLiteralReport(t *testing.T) {
	rep := WorkoutReport{Exercises: []ExerciseResult{
		{Label: "1. Подтягивания", Sets: []SetResult{{Key: "1.1", Value: 10}, {Key: "1.2", Value: 12.5}}},
		{Label: "2. Брусья"},
	}}
	require.Equal(t, "1. Подтягивания\n1.1 -> 10\n1.2 -> 12.5\n2. Брусья\n", rep.Message())
}

func TestRunMessageFromLiteralReport(t *testing.T) {
	rep := RunReport{Fields: []RunField{
		{Label: "Название", Value: "Пробежка"},
		{Label: "Дистанция (км)", Value: 7.0},
	}}
	require.Equal(t, "Название: Пробежка\nДистанция (км): 7", rep.Message())
}
