package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"workout-bot/api/internal/notion"
	"workout-bot/api/internal/screenshot"
)

// acceptScreenshot принимает скриншот трекера (фото или документом),
// прогоняет его через OCR и заносит новую запись пробежки в Notion.
func (r *Router) acceptScreenshot(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	databaseID, ok := pendingUpload(cid)
	if !ok {
		return
	}

	var fileID string
	switch {
	case len(msg.Photo) > 0:
		// самое большое превью
		fileID = msg.Photo[len(msg.Photo)-1].FileID
	case msg.Document != nil:
		fileID = msg.Document.FileID
	default:
		return
	}

	r.send(cid, "Принял скрин, обрабатываю…")

	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		r.SendError(cid, err)
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	img, err := download(url)
	if err != nil {
		r.SendError(cid, err)
		return
	}

	ctx := context.Background()
	eng := r.EngManager.Get(cid)
	text, err := eng.Recognize(ctx, img)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	log.Printf("ocr (%s) recognized %d bytes of text for chat %d", eng.Name(), len(text), cid)

	data, err := screenshot.ParseText(text)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	props, err := screenshot.BuildSubmission(data, time.Now())
	if err != nil {
		r.SendError(cid, err)
		return
	}

	page := notion.NewPage{
		Parent:     notion.PageParent{Type: "database_id", DatabaseID: databaseID},
		Properties: props,
	}
	if err := r.Notion.CreatePage(ctx, page); err != nil {
		r.SendError(cid, err)
		return
	}

	clearPendingUpload(cid)
	r.send(cid, "✅ Тренировка записана в Notion.")
}

func download(url string) ([]byte, error) {
	resp, err := httpClient().Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}
