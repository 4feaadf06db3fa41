package report

import (
	"workout-bot/api/internal/notion"
)

// runFields — девять полей пробежки в порядке вывода. Порядок фиксирован:
// при ошибке падаем на первом же отсутствующем поле, сообщения детерминированы.
var runFields = []string{
	"Название",
	"Дата",
	"Дистанция (км)",
	"Общее время",
	"Средний темп",
	"Сожжено (ккал)",
	"Средний пульс (уд/мин)",
	"Максимальный пульс (уд/мин)",
	"Время паузы",
}

// RunField — метрика пробежки: метка и декодированное значение.
type RunField struct {
	Label string
	Value any
}

// RunReport — фиксированный набор метрик последней пробежки.
type RunReport struct {
	Fields []RunField
}

// BuildRun декодирует девять обязательных полей последней записи пробежки.
// Частичного отчёта не бывает: первое отсутствующее или пустое поле —
// MissingFieldError с его именем.
func BuildRun(row notion.Page) (RunReport, error) {
	rep := RunReport{Fields: make([]RunField, 0, len(runFields))}
	for _, name := range runFields {
		prop, ok := row.Properties[name]
		if !ok {
			return RunReport{}, &MissingFieldError{Field: name}
		}
		v, err := prop.Decode(name)
		if err != nil {
			return RunReport{}, err
		}
		if v == nil {
			return RunReport{}, &MissingFieldError{Field: name}
		}
		rep.Fields = append(rep.Fields, RunField{Label: name, Value: v})
	}
	return rep, nil
}
