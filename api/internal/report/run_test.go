package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"workout-bot/api/internal/notion"
)

func runRow() map[string]notion.Property {
	dist := 7.2
	cal := 512.0
	avg := 152.0
	max := 171.0
	total := "0:41:05"
	pace := "5:42"
	pause := "0:01:12"
	return map[string]notion.Property{
		"Название": {Type: "title", Title: []notion.RichText{{PlainText: "Пробежка утром"}}},
		"Дата":     {Type: "date", Date: &notion.DateValue{Start: "2024-05-01"}},
		"Дистанция (км)":             {Type: "number", Number: &dist},
		"Общее время":                {Type: "formula", Formula: &notion.Property{Type: "string", String: &total}},
		"Средний темп":               {Type: "formula", Formula: &notion.Property{Type: "string", String: &pace}},
		"Сожжено (ккал)":             {Type: "number", Number: &cal},
		"Средний пульс (уд/мин)":     {Type: "number", Number: &avg},
		"Максимальный пульс (уд/мин)": {Type: "number", Number: &max},
		"Время паузы":                {Type: "formula", Formula: &notion.Property{Type: "string", String: &pause}},
	}
}

func TestBuildRunDecodesAllNineFields(t *testing.T) {
	rep, err := BuildRun(notion.Page{Properties: runRow()})
	require.NoError(t, err)
	require.Len(t, rep.Fields, 9)
	require.Equal(t, "Название", rep.Fields[0].Label)
	require.Equal(t, "Пробежка утром", rep.Fields[0].Value)
	require.Equal(t, "Время паузы", rep.Fields[8].Label)
	require.Equal(t, "0:01:12", rep.Fields[8].Value)
}

func TestBuildRunMissingFieldNamesIt(t *testing.T) {
	props := runRow()
	delete(props, "Средний темп")

	_, err := BuildRun(notion.Page{Properties: props})
	var missErr *MissingFieldError
	require.ErrorAs(t, err, &missErr)
	require.Equal(t, "Средний темп", missErr.Field)
}

func TestBuildRunFailsOnFirstMissingInDeclaredOrder(t *testing.T) {
	props := runRow()
	delete(props, "Дата")
	delete(props, "Время паузы")

	_, err := BuildRun(notion.Page{Properties: props})
	var missErr *MissingFieldError
	require.ErrorAs(t, err, &missErr)
	require.Equal(t, "Дата", missErr.Field)
}

func TestBuildRunNullMandatoryNumberIsMissing(t *testing.T) {
	props := runRow()
	props["Сожжено (ккал)"] = notion.Property{Type: "number"}

	_, err := BuildRun(notion.Page{Properties: props})
	var missErr *MissingFieldError
	require.ErrorAs(t, err, &missErr)
	require.Equal(t, "Сожжено (ккал)", missErr.Field)
}

func TestRunReportMessage(t *testing.T) {
	rep, err := BuildRun(notion.Page{Properties: runRow()})
	require.NoError(t, err)
	msg := rep.Message()
	require.Equal(t,
		"Название: Пробежка утром\n"+
			"Дата: 2024-05-01\n"+
			"Дистанция (км): 7.2\n"+
			"Общее время: 0:41:05\n"+
			"Средний темп: 5:42\n"+
			"Сожжено (ккал): 512\n"+
			"Средний пульс (уд/мин): 152\n"+
			"Максимальный пульс (уд/мин): 171\n"+
			"Время паузы: 0:01:12",
		msg)
}
