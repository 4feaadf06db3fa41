package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Message — текст отчёта о тренировке для отправки в чат:
// строка-заголовок упражнения, под ней строки "ключ -> значение".
func (r WorkoutReport) Message() string {
	var b strings.Builder
	for _, ex := range r.Exercises {
		b.WriteString(ex.Label)
		b.WriteByte('\n')
		for _, sr := range ex.Sets {
			b.WriteString(sr.Key)
			b.WriteString(" -> ")
			b.WriteString(formatValue(sr.Value))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Message — текст отчёта о пробежке: "метка: значение" на строку,
// в объявленном порядке полей.
func (r RunReport) Message() string {
	lines := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		lines = append(lines, f.Label+": "+formatValue(f.Value))
	}
	return strings.Join(lines, "\n")
}

// formatValue печатает числа без хвоста ".0" у целых (JSON отдаёт все
// числа как float64).
func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
