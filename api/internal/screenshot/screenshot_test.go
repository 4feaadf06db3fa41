package screenshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workout-bot/api/internal/notion"
	"workout-bot/api/internal/report"
)

func TestParseTextPairsValuesWithLabels(t *testing.T) {
	data, err := ParseText("250\nСожжено ккал\n165\nСредний пульс")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"Сожжено ккал":  "250",
		"Средний пульс": "165",
	}, data)
}

func TestParseTextMultipleMetricsPerLine(t *testing.T) {
	// трекер рисует метрики колонками: строка значений, под ней строка меток
	data, err := ParseText("01:02:03 300\nВремя тренировки Сожжено ккал\n\n150 176\nСредний пульс Максимальный пульс\n")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"Время тренировки":   "01:02:03",
		"Сожжено ккал":       "300",
		"Средний пульс":      "150",
		"Максимальный пульс": "176",
	}, data)
}

func TestParseTextDropsEmptyLines(t *testing.T) {
	data, err := ParseText("\n\n250\n\nСожжено ккал\n\n")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"Сожжено ккал": "250"}, data)
}

func TestParseTextTokenCountMismatch(t *testing.T) {
	// три метки против двух значений — выравнивание не угадываем
	_, err := ParseText("150 176\nСредний пульс Максимальный пульс Время паузы")
	var reconErr *ReconciliationError
	require.ErrorAs(t, err, &reconErr)
}

func TestParseTextOddLineCount(t *testing.T) {
	_, err := ParseText("250\nСожжено ккал\n165")
	var reconErr *ReconciliationError
	require.ErrorAs(t, err, &reconErr)
}

func fullData() map[string]string {
	return map[string]string{
		"Сожжено ккал":       "300",
		"Средний пульс":      "150",
		"Максимальный пульс": "176",
		"Время тренировки":   "01:23:45",
		"Время паузы":        "00:02:10",
	}
}

func numberOf(t *testing.T, props map[string]notion.Property, key string) float64 {
	t.Helper()
	p, ok := props[key]
	require.True(t, ok, "property %q", key)
	require.NotNil(t, p.Number, "property %q", key)
	return *p.Number
}

func TestBuildSubmissionSplitsDurations(t *testing.T) {
	day := time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC)
	props, err := BuildSubmission(fullData(), day)
	require.NoError(t, err)

	require.Equal(t, 1.0, numberOf(t, props, "Время тренировки (ч)"))
	require.Equal(t, 23.0, numberOf(t, props, "Время тренировки (мин)"))
	require.Equal(t, 45.0, numberOf(t, props, "Время тренировки (с)"))
	require.Equal(t, 0.0, numberOf(t, props, "Время паузы (ч)"))
	require.Equal(t, 2.0, numberOf(t, props, "Время паузы (мин)"))
	require.Equal(t, 10.0, numberOf(t, props, "Время паузы (с)"))
}

func TestBuildSubmissionCoercesIntegers(t *testing.T) {
	props, err := BuildSubmission(fullData(), time.Now())
	require.NoError(t, err)

	require.Equal(t, 300.0, numberOf(t, props, "Сожжено (ккал)"))
	require.Equal(t, 150.0, numberOf(t, props, "Средний пульс (уд/мин)"))
	require.Equal(t, 176.0, numberOf(t, props, "Максимальный пульс (уд/мин)"))
}

func TestBuildSubmissionStampsInvocationDay(t *testing.T) {
	day := time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC)
	props, err := BuildSubmission(fullData(), day)
	require.NoError(t, err)

	require.NotNil(t, props["Дата"].Date)
	require.Equal(t, "2024-05-01", props["Дата"].Date.Start)
	require.Len(t, props["Название"].Title, 1)
	require.Equal(t, "Пробежка 2024-05-01", props["Название"].Title[0].Text.Content)
}

func TestBuildSubmissionMissingLabel(t *testing.T) {
	data := fullData()
	delete(data, "Время тренировки")

	_, err := BuildSubmission(data, time.Now())
	var missErr *report.MissingFieldError
	require.ErrorAs(t, err, &missErr)
	require.Equal(t, "Время тренировки", missErr.Field)
}

func TestBuildSubmissionRejectsBadDuration(t *testing.T) {
	data := fullData()
	data["Время паузы"] = "02:10"

	_, err := BuildSubmission(data, time.Now())
	require.Error(t, err)
}

func TestBuildSubmissionRejectsNonInteger(t *testing.T) {
	data := fullData()
	data["Сожжено ккал"] = "3OO" // OCR перепутал нули с буквами

	_, err := BuildSubmission(data, time.Now())
	require.Error(t, err)
}
