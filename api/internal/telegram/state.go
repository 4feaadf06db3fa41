package telegram

import (
	"sync"

	"github.com/google/uuid"
)

// uploadWait: chatID -> uuid базы, в которую ждём скриншот тренировки.
var uploadWait sync.Map

func setPendingUpload(chatID int64, databaseID uuid.UUID) {
	uploadWait.Store(chatID, databaseID)
}

func pendingUpload(chatID int64) (uuid.UUID, bool) {
	v, ok := uploadWait.Load(chatID)
	if !ok {
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

func clearPendingUpload(chatID int64) {
	uploadWait.Delete(chatID)
}
