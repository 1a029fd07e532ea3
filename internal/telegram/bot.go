package telegram

import (
	"fmt"
	"strings"

	"go-linkedin-scraper/internal/scraper"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot pushes newly scraped jobs to a Telegram chat.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

func (b *Bot) escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// NotifyRecord sends one scraped job to the chat.
func (b *Bot) NotifyRecord(record scraper.JobRecord) error {
	msgText := fmt.Sprintf("💼 *%s*\n", b.escapeMarkdown(record.Title))
	msgText += fmt.Sprintf("🏢 %s\n", b.escapeMarkdown(record.Company))
	msgText += fmt.Sprintf("🔗 [View Job](%s)\n", record.URL)
	msgText += fmt.Sprintf("📮 %s\n", b.escapeMarkdown(string(record.ApplicationType)))

	if record.ExternalURL != nil && *record.ExternalURL != "N/A" {
		msgText += fmt.Sprintf("🌐 [Apply Here](%s)\n", *record.ExternalURL)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔗 View Job", record.URL),
		),
	)

	msg := tgbotapi.NewMessage(b.chatID, msgText)
	msg.ParseMode = "MarkdownV2"
	msg.ReplyMarkup = keyboard

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) NotifyStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
