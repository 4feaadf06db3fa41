// Package screenshot разбирает OCR-текст скриншота фитнес-трекера и
// собирает из него свойства новой записи Notion.
package screenshot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"workout-bot/api/internal/notion"
	"workout-bot/api/internal/report"
)

// ReconciliationError — строка меток и строка значений не сошлись по числу
// токенов. Частичного сопоставления не делаем: OCR мог потерять или
// придумать строку, угадывать выравнивание опаснее, чем упасть.
type ReconciliationError struct {
	Reason string
}

func (e *ReconciliationError) Error() string {
	return "screenshot text: " + e.Reason
}

// ParseText разбирает OCR-дамп скриншота в плоскую карту "метка -> значение".
// Макет трекера фиксированный: после отбрасывания пустых строк чередуются
// строка значений (чётные индексы) и строка меток (нечётные). Метки внутри
// строки ничем не разделены, граница — пробелы перед заглавной кириллической
// буквой; значения разделены пробелами.
func ParseText(raw string) (map[string]string, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if len(lines)%2 != 0 {
		return nil, &ReconciliationError{Reason: "odd number of lines, value/label pairing is broken"}
	}

	data := make(map[string]string)
	for i := 0; i+1 < len(lines); i += 2 {
		values := strings.Fields(lines[i])
		labels := splitLabels(lines[i+1])
		if len(labels) != len(values) {
			return nil, &ReconciliationError{
				Reason: fmt.Sprintf("%d labels vs %d values", len(labels), len(values)),
			}
		}
		for j, label := range labels {
			data[label] = values[j]
		}
	}
	return data, nil
}

// splitLabels режет строку меток на отдельные метки: разрез там, где за
// пробельным участком идёт заглавная кириллическая буква. Хвосты вроде
// "ккал" остаются при своей метке.
func splitLabels(line string) []string {
	var labels []string
	var cur strings.Builder
	runes := []rune(strings.TrimSpace(line))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsSpace(r) {
			j := i
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			if j < len(runes) && unicode.Is(unicode.Cyrillic, runes[j]) && unicode.IsUpper(runes[j]) {
				if cur.Len() > 0 {
					labels = append(labels, cur.String())
					cur.Reset()
				}
				i = j - 1
				continue
			}
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		labels = append(labels, cur.String())
	}
	return labels
}

// Метки трекера, которые уходят в таблицу. Наблюдаемый текст скриншота —
// дословно.
const (
	labelCalories  = "Сожжено ккал"
	labelAvgPulse  = "Средний пульс"
	labelMaxPulse  = "Максимальный пульс"
	labelDuration  = "Время тренировки"
	labelPauseTime = "Время паузы"
)

// BuildSubmission собирает свойства новой записи пробежки из разобранного
// скриншота. Длительности раскладываются на числовые колонки часов, минут и
// секунд (итоговые "Общее время" и "Время паузы" в таблице — формулы поверх
// них), остальные метрики приводятся к целым. Дата — всегда день вызова,
// из скриншота она не берётся.
func BuildSubmission(data map[string]string, day time.Time) (map[string]notion.Property, error) {
	props := map[string]notion.Property{
		"Название": {Title: []notion.RichText{
			{Text: &notion.Text{Content: "Пробежка " + day.Format("2006-01-02")}},
		}},
		"Дата": {Date: &notion.DateValue{Start: day.Format("2006-01-02")}},
	}

	numeric := []struct {
		label  string
		column string
	}{
		{labelCalories, "Сожжено (ккал)"},
		{labelAvgPulse, "Средний пульс (уд/мин)"},
		{labelMaxPulse, "Максимальный пульс (уд/мин)"},
	}
	for _, nc := range numeric {
		label, column := nc.label, nc.column
		raw, ok := data[label]
		if !ok {
			return nil, &report.MissingFieldError{Field: label}
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("value %q of %q: %w", raw, label, err)
		}
		props[column] = numberProp(float64(n))
	}

	for _, label := range []string{labelDuration, labelPauseTime} {
		raw, ok := data[label]
		if !ok {
			return nil, &report.MissingFieldError{Field: label}
		}
		h, m, s, err := splitDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("duration %q of %q: %w", raw, label, err)
		}
		props[label+" (ч)"] = numberProp(float64(h))
		props[label+" (мин)"] = numberProp(float64(m))
		props[label+" (с)"] = numberProp(float64(s))
	}

	return props, nil
}

func numberProp(v float64) notion.Property {
	return notion.Property{Number: &v}
}

// splitDuration разбирает "чч:мм:сс" на три целых компоненты.
func splitDuration(raw string) (h, m, s int, err error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want hh:mm:ss, got %d parts", len(parts))
	}
	if h, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, err
	}
	if m, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, 0, err
	}
	if s, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, err
	}
	return h, m, s, nil
}
