package notion

import "fmt"

// Property — самоописывающееся значение поля записи. Тип лежит в Type,
// полезная нагрузка — в одноимённом поле. Formula оборачивает вложенное
// значение ровно на один уровень (глубже наблюдаемая схема не ходит).
//
// Эта же структура служит телом свойства при создании страницы: для
// отправки заполняется только нужная ветка, Type остаётся пустым.
type Property struct {
	Type    string     `json:"type,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	String  *string    `json:"string,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
	Title   []RichText `json:"title,omitempty"`
	Formula *Property  `json:"formula,omitempty"`
}

type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// DecodeError — неизвестный тег типа либо некорректная полезная нагрузка.
type DecodeError struct {
	Field  string
	Type   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode property %q (type %q): %s", e.Field, e.Type, e.Reason)
}

// Decode извлекает плоское значение по тегу типа. Отсутствующая полезная
// нагрузка (number: null и т.п.) возвращается как nil без ошибки: для
// колонок подходов это штатное "нет данных", обязательность поля решает
// вызывающий.
func (p Property) Decode(field string) (any, error) {
	return p.decode(field, false)
}

func (p Property) decode(field string, inFormula bool) (any, error) {
	switch p.Type {
	case "number":
		if p.Number == nil {
			return nil, nil
		}
		return *p.Number, nil
	case "string":
		if p.String == nil {
			return nil, nil
		}
		return *p.String, nil
	case "date":
		if p.Date == nil {
			return nil, nil
		}
		// конец диапазона игнорируем
		return p.Date.Start, nil
	case "title":
		if len(p.Title) == 0 {
			return nil, &DecodeError{Field: field, Type: p.Type, Reason: "title has no runs"}
		}
		return p.Title[0].PlainText, nil
	case "formula":
		if p.Formula == nil {
			return nil, &DecodeError{Field: field, Type: p.Type, Reason: "formula payload is empty"}
		}
		if inFormula {
			return nil, &DecodeError{Field: field, Type: p.Type, Reason: "formula nested deeper than one level"}
		}
		return p.Formula.decode(field, true)
	default:
		return nil, &DecodeError{Field: field, Type: p.Type, Reason: "unknown property type"}
	}
}
