package notion

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RichText — один run форматированного текста (title/description).
type RichText struct {
	Type      string `json:"type,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
	Text      *Text  `json:"text,omitempty"`
}

type Text struct {
	Content string `json:"content"`
}

type DatabaseParent struct {
	Type   string    `json:"type,omitempty"`
	PageID uuid.UUID `json:"page_id,omitempty"`
}

// Database — таблица Notion. Description несёт текстовый каталог упражнений.
// Properties здесь — схема колонок, а не значения; целиком её не разбираем.
type Database struct {
	Object      string                     `json:"object"`
	ID          uuid.UUID                  `json:"id"`
	CreatedTime time.Time                  `json:"created_time"`
	Title       []RichText                 `json:"title"`
	Description []RichText                 `json:"description"`
	Properties  map[string]json.RawMessage `json:"properties"`
	Parent      DatabaseParent             `json:"parent"`
}

// PlainTitle — заголовок первой строкой, "" если заголовка нет.
func (d Database) PlainTitle() string {
	if len(d.Title) == 0 {
		return ""
	}
	return d.Title[0].PlainText
}

// PlainDescription — текст описания первой строкой, "" если описания нет.
func (d Database) PlainDescription() string {
	if len(d.Description) == 0 {
		return ""
	}
	return d.Description[0].PlainText
}

type PageParent struct {
	Type       string    `json:"type,omitempty"`
	DatabaseID uuid.UUID `json:"database_id,omitempty"`
}

// Page — одна запись (строка) таблицы.
type Page struct {
	Object      string              `json:"object"`
	ID          uuid.UUID           `json:"id"`
	CreatedTime time.Time           `json:"created_time"`
	Parent      PageParent          `json:"parent"`
	Properties  map[string]Property `json:"properties"`
}

// Sort — элемент сортировки для запроса /databases/{id}/query.
type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// NewPage — тело запроса POST /v1/pages.
type NewPage struct {
	Parent     PageParent          `json:"parent"`
	Properties map[string]Property `json:"properties"`
}
