package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"workout-bot/api/internal/notion"
	"workout-bot/api/internal/ocr"
	"workout-bot/api/internal/report"
	"workout-bot/api/internal/screenshot"
)

type Router struct {
	Bot        *tgbotapi.BotAPI
	Notion     *notion.Client
	EngManager *ocr.Manager
}

type Engines struct {
	Gemini ocr.Engine
	Yandex ocr.Engine
}

func (r *Router) HandleUpdate(upd tgbotapi.Update, engines Engines) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.HandleCommand(upd, engines)
		return
	}

	// скриншот трекера (фото или файлом), если его ждём
	if _, waiting := pendingUpload(cid); waiting &&
		(len(upd.Message.Photo) > 0 || upd.Message.Document != nil) {
		r.acceptScreenshot(*upd.Message)
		return
	}

	if upd.Message.Text != "" {
		r.handleText(*upd.Message)
	}
}

func (r *Router) HandleCommand(upd tgbotapi.Update, engines Engines) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.sendStart(upd.Message)
	case "health":
		r.send(cid, "✅ OK")
	case "engine":
		r.handleEngineCommand(cid, upd.Message.Text, engines)
	default:
		r.send(cid, "Неизвестная команда")
	}
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = r.Bot.Send(msg)
}

// SendError переводит именованные ошибки пайплайна в понятный пользователю
// текст; всё остальное уходит общим сообщением.
func (r *Router) SendError(chatID int64, err error) {
	var (
		decodeErr *notion.DecodeError
		emptyErr  *report.EmptyResultError
		missErr   *report.MissingFieldError
		reconErr  *screenshot.ReconciliationError
	)
	switch {
	case errors.As(err, &decodeErr):
		r.send(chatID, fmt.Sprintf("Не смог прочитать поле «%s» из Notion: %s", decodeErr.Field, decodeErr.Reason))
	case errors.As(err, &emptyErr):
		r.send(chatID, "В таблице пока нет ни одной записи.")
	case errors.As(err, &missErr):
		r.send(chatID, fmt.Sprintf("Не нашёл обязательное поле «%s».", missErr.Field))
	case errors.As(err, &reconErr):
		r.send(chatID, "Не смог разобрать скриншот: "+reconErr.Reason+"\nПопробуйте прислать скрин ещё раз.")
	default:
		r.send(chatID, fmt.Sprintf("Ошибка: %v", err))
	}
}
