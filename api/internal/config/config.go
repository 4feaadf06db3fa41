package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	WebhookURL string

	TelegramBotToken string

	NotionToken   string
	NotionVersion string

	GeminiAPIKey string
	GeminiModel  string

	YCOAuthToken string
	YCFolderID   string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8080"),
		WebhookURL: getEnv("WEBHOOK_URL", ""),

		TelegramBotToken: mustEnv("BOT_TOKEN"),

		NotionToken:   mustEnv("NOTION_TOKEN"),
		NotionVersion: getEnv("NOTION_VERSION", "2022-06-28"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		// Яндекс OCR опционален: без токена остаётся только gemini
		YCOAuthToken: getEnv("YC_OAUTH_TOKEN", ""),
		YCFolderID:   getEnv("YC_FOLDER_ID", ""),
	}
}
