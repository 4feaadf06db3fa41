package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/google/uuid"
)

const (
	btnHello    = "👋 Поздороваться"
	btnWorkouts = "🦾 Тренировки"
)

func makeStartKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnHello)),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnWorkouts)),
	)
	kb.ResizeKeyboard = true
	return kb
}

// makeWorkoutsKeyboard — кнопка на каждую базу тренировок,
// callback вида database/<uuid>/operations.
func makeWorkoutsKeyboard(databases map[uuid.UUID]string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(databases))
	for id, title := range databases {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(title, "database/"+id.String()+"/operations"),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func makeOperationsKeyboard(databaseID uuid.UUID) tgbotapi.InlineKeyboardMarkup {
	base := "database/" + databaseID.String()
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Показать результат последней тренировки", base+"/last_result"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Загрузить новую тренировку", base+"/new_result"),
		),
	)
}
