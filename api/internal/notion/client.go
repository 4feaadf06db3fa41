package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.notion.com/v1"

// Client — тонкий клиент Notion API. Без ретраев: любая ошибка запроса
// сразу уходит наверх, в чат-слой.
type Client struct {
	Token   string
	Version string
	BaseURL string

	httpc *http.Client
}

func NewClient(token, version string) *Client {
	return &Client{
		Token:   token,
		Version: version,
		BaseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type searchRequest struct {
	Query  string        `json:"query,omitempty"`
	Filter *searchFilter `json:"filter,omitempty"`
}

type searchFilter struct {
	Value    string `json:"value"`
	Property string `json:"property"`
}

type searchResponse struct {
	Results []json.RawMessage `json:"results"`
}

// SearchDatabases возвращает все базы, которые видит интеграция.
func (c *Client) SearchDatabases(ctx context.Context) ([]Database, error) {
	body := searchRequest{Filter: &searchFilter{Value: "database", Property: "object"}}
	var resp searchResponse
	if err := c.do(ctx, http.MethodPost, "/search", body, &resp); err != nil {
		return nil, err
	}
	dbs := make([]Database, 0, len(resp.Results))
	for _, raw := range resp.Results {
		var db Database
		if err := json.Unmarshal(raw, &db); err != nil {
			return nil, fmt.Errorf("search result: %w", err)
		}
		dbs = append(dbs, db)
	}
	return dbs, nil
}

// Database забирает базу по id вместе с описанием (каталог упражнений).
func (c *Client) Database(ctx context.Context, id uuid.UUID) (Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+id.String(), nil, &db); err != nil {
		return Database{}, err
	}
	return db, nil
}

type queryRequest struct {
	Sorts []Sort `json:"sorts,omitempty"`
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// QueryDatabase возвращает записи базы. sorts — серверная сортировка;
// полагаться на неё нельзя, выбор последней записи пересортировывает сам.
func (c *Client) QueryDatabase(ctx context.Context, id uuid.UUID, sorts []Sort) ([]Page, error) {
	var resp queryResponse
	if err := c.do(ctx, http.MethodPost, "/databases/"+id.String()+"/query", queryRequest{Sorts: sorts}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// CreatePage добавляет новую запись в таблицу.
func (c *Client) CreatePage(ctx context.Context, page NewPage) error {
	return c.do(ctx, http.MethodPost, "/pages", page, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Notion-Version", c.Version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("notion %s %s: %d: %s", method, path, resp.StatusCode, string(b))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
