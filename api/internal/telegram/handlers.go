package telegram

import (
	"context"
	"log"
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// templateWorkoutTitle — базы тренировок называются "Тренировка. <вид>".
var templateWorkoutTitle = regexp.MustCompile(`^Тренировка.`)

func (r *Router) sendStart(message *tgbotapi.Message) {
	log.Printf("start from chat %d", message.Chat.ID)
	msg := tgbotapi.NewMessage(message.Chat.ID,
		"Привет, "+message.From.FirstName+"! Я бот для взаимодействия с твоим Notion.\n"+
			"Выбери желаемое действие ниже ...")
	msg.ReplyMarkup = makeStartKeyboard()
	_, _ = r.Bot.Send(msg)
}

func (r *Router) handleText(message tgbotapi.Message) {
	cid := message.Chat.ID
	log.Printf("workflow message %q from chat %d", message.Text, cid)
	switch message.Text {
	case btnHello:
		r.send(cid, "Привет! Спасибо, что пользуешься мной!)")
	case btnWorkouts:
		r.listWorkouts(cid)
	}
}

// listWorkouts показывает меню баз тренировок из Notion.
func (r *Router) listWorkouts(chatID int64) {
	databases, err := r.workoutDatabases(context.Background())
	if err != nil {
		r.SendError(chatID, err)
		return
	}
	if len(databases) == 0 {
		r.send(chatID, "Не нашёл ни одной базы тренировок в Notion.")
		return
	}
	msg := tgbotapi.NewMessage(chatID, "Выберите тренировку:")
	msg.ReplyMarkup = makeWorkoutsKeyboard(databases)
	_, _ = r.Bot.Send(msg)
}

func (r *Router) allDatabases(ctx context.Context) (map[uuid.UUID]string, error) {
	dbs, err := r.Notion.SearchDatabases(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(dbs))
	for _, db := range dbs {
		out[db.ID] = db.PlainTitle()
	}
	return out, nil
}

func (r *Router) workoutDatabases(ctx context.Context) (map[uuid.UUID]string, error) {
	all, err := r.allDatabases(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]string, len(all))
	for id, title := range all {
		if templateWorkoutTitle.MatchString(title) {
			out[id] = title
		}
	}
	return out, nil
}

// databaseKind — вид тренировки из заголовка "Тренировка. Турник" -> "Турник".
func databaseKind(title string) string {
	parts := strings.SplitN(title, ".", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// handleEngineCommand переключает OCR-движок для чата:
// /engine gemini [model] | /engine yandex
func (r *Router) handleEngineCommand(chatID int64, cmd string, engines Engines) {
	args := strings.Fields(strings.TrimSpace(strings.TrimPrefix(cmd, "/engine")))
	if len(args) == 0 {
		cur := r.EngManager.Get(chatID)
		r.send(chatID, "Текущий движок: "+cur.Name()+" ("+cur.GetModel()+")\n"+
			"Использование:\n/engine gemini [model]\n/engine yandex")
		return
	}

	type modelSetter interface{ SetModel(string) }

	name := strings.ToLower(args[0])
	var mdl string
	if len(args) > 1 {
		mdl = args[1]
	}
	switch name {
	case "gemini":
		eng := engines.Gemini
		if eng == nil {
			r.send(chatID, "❌ Gemini не настроен.")
			return
		}
		if mdl != "" {
			if ms, ok := any(eng).(modelSetter); ok {
				ms.SetModel(mdl)
			}
		}
		r.EngManager.Set(chatID, eng)
		r.send(chatID, "✅ Движок: gemini ("+eng.GetModel()+").")
	case "yandex":
		if engines.Yandex == nil {
			r.send(chatID, "❌ Yandex OCR не настроен: нужны YC_OAUTH_TOKEN и YC_FOLDER_ID.")
			return
		}
		r.EngManager.Set(chatID, engines.Yandex)
		r.send(chatID, "✅ Движок: yandex.")
	default:
		r.send(chatID, "Неизвестный движок. Доступны: gemini | yandex")
	}
}
