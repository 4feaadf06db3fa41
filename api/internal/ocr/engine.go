package ocr

import (
	"context"
	"sync"
)

// Engine — распознаватель текста на изображении. Возвращает сырой текст,
// разбором занимается пакет screenshot.
type Engine interface {
	Name() string
	GetModel() string
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Manager хранит выбранный движок на чат; без явного выбора — дефолтный.
type Manager struct {
	def Engine
	m   sync.Map // chatID -> Engine
}

func NewManager(defaultEngine Engine) *Manager {
	return &Manager{def: defaultEngine}
}

func (m *Manager) Get(chatID int64) Engine {
	if v, ok := m.m.Load(chatID); ok {
		return v.(Engine)
	}
	return m.def
}

func (m *Manager) Set(chatID int64, e Engine) {
	m.m.Store(chatID, e)
}
