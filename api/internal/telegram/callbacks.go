package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"workout-bot/api/internal/notion"
	"workout-bot/api/internal/report"
)

const (
	kindPullUps = "Турник"
	kindRun     = "Пробежка"
)

// dateField — колонка, по которой просим сервер сортировать записи.
const dateField = "Дата"

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	cid := cb.Message.Chat.ID
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")) // ack

	// database/<uuid>/<action>
	params := strings.Split(cb.Data, "/")
	if len(params) != 3 || params[0] != "database" {
		return
	}
	databaseID, err := uuid.Parse(params[1])
	if err != nil {
		r.send(cid, "Некорректный идентификатор базы.")
		return
	}

	switch params[2] {
	case "operations":
		r.showOperations(cid, databaseID)
	case "last_result":
		r.sendLastReport(cid, databaseID)
	case "new_result":
		r.askScreenshot(cid, databaseID)
	}
}

func (r *Router) showOperations(chatID int64, databaseID uuid.UUID) {
	log.Printf("operations menu for database %s", databaseID)
	title, ok := r.lookupDatabase(chatID, databaseID)
	if !ok {
		return
	}
	msg := tgbotapi.NewMessage(chatID, "Выберите действие для '"+title+"'")
	msg.ReplyMarkup = makeOperationsKeyboard(databaseID)
	_, _ = r.Bot.Send(msg)
}

// sendLastReport строит и отправляет отчёт о последней записи базы.
// Вид отчёта определяет заголовок базы: "Турник" или "Пробежка".
func (r *Router) sendLastReport(chatID int64, databaseID uuid.UUID) {
	title, ok := r.lookupDatabase(chatID, databaseID)
	if !ok {
		return
	}
	ctx := context.Background()

	switch databaseKind(title) {
	case kindPullUps:
		rep, err := r.buildWorkoutReport(ctx, databaseID)
		if err != nil {
			r.SendError(chatID, err)
			return
		}
		r.send(chatID, rep.Message())
	case kindRun:
		rep, err := r.buildRunReport(ctx, databaseID)
		if err != nil {
			r.SendError(chatID, err)
			return
		}
		r.send(chatID, rep.Message())
	default:
		r.send(chatID, "Не знаю, как строить отчёт для '"+title+"'.")
	}
}

// buildWorkoutReport тянет описание базы (каталог упражнений) и её записи.
// Запросы независимы, поэтому идут параллельно; группировка ждёт оба.
func (r *Router) buildWorkoutReport(ctx context.Context, databaseID uuid.UUID) (report.WorkoutReport, error) {
	var (
		db   notion.Database
		rows []notion.Page
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		db, err = r.Notion.Database(gctx, databaseID)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = r.Notion.QueryDatabase(gctx, databaseID, descendingByDate())
		return err
	})
	if err := g.Wait(); err != nil {
		return report.WorkoutReport{}, err
	}

	latest, err := report.Latest(rows)
	if err != nil {
		return report.WorkoutReport{}, err
	}
	return report.BuildWorkout(db, latest), nil
}

func (r *Router) buildRunReport(ctx context.Context, databaseID uuid.UUID) (report.RunReport, error) {
	rows, err := r.Notion.QueryDatabase(ctx, databaseID, descendingByDate())
	if err != nil {
		return report.RunReport{}, err
	}
	latest, err := report.Latest(rows)
	if err != nil {
		return report.RunReport{}, err
	}
	return report.BuildRun(latest)
}

func (r *Router) askScreenshot(chatID int64, databaseID uuid.UUID) {
	title, ok := r.lookupDatabase(chatID, databaseID)
	if !ok {
		return
	}
	if databaseKind(title) != kindRun {
		r.send(chatID, "Загрузка по скриншоту пока работает только для пробежек.")
		return
	}
	setPendingUpload(chatID, databaseID)
	r.send(chatID, "Отправьте скрин тренировки в сообщении")
}

// lookupDatabase проверяет, что база из callback ещё видна интеграции.
func (r *Router) lookupDatabase(chatID int64, databaseID uuid.UUID) (string, bool) {
	databases, err := r.allDatabases(context.Background())
	if err != nil {
		r.SendError(chatID, err)
		return "", false
	}
	title, ok := databases[databaseID]
	if !ok {
		r.send(chatID, "База не найдена в Notion. Обновите список через «"+btnWorkouts+"».")
		return "", false
	}
	return title, true
}

func descendingByDate() []notion.Sort {
	return []notion.Sort{{Property: dateField, Direction: "descending"}}
}
