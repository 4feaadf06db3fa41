package report

import "fmt"

// EmptyResultError — запрос к таблице не вернул ни одной записи.
type EmptyResultError struct {
	What string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no records: %s", e.What)
}

// MissingFieldError — обязательное поле отчёта или распознанная метка
// скриншота отсутствует.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}
