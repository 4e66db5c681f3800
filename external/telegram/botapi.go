package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	telegrampkg "github.com/ninfea/babylog/internal/telegram"
)

type Client struct {
	token          string
	pollTimeoutSec int

	bot             *tgbotapi.BotAPI
	mainKeyboard    tgbotapi.ReplyKeyboardMarkup
	hasMainKeyboard bool

	onMessage  func(telegrampkg.MessageEvent)
	onCallback func(telegrampkg.CallbackEvent)

	stop     chan struct{}
	stopOnce sync.Once
}

func NewClient(token string, pollTimeoutSec int) telegrampkg.Client {
	return &Client{
		token:          token,
		pollTimeoutSec: pollTimeoutSec,
		stop:           make(chan struct{}),
	}
}

func (c *Client) Connect(ctx context.Context) error {
	_ = ctx
	bot, err := tgbotapi.NewBotAPI(c.token)
	if err != nil {
		return fmt.Errorf("telegram authentication failed: %w", err)
	}
	c.bot = bot
	slog.Info("telegram bot authenticated", "username", bot.Self.UserName, "bot_id", bot.Self.ID)
	return nil
}

func (c *Client) Close() error {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	if c.bot != nil {
		c.bot.StopReceivingUpdates()
	}
	return nil
}

func (c *Client) BotUsername() (string, error) {
	if c.bot == nil {
		return "", fmt.Errorf("telegram session is not initialized")
	}
	return c.bot.Self.UserName, nil
}

func (c *Client) SetMainKeyboard(rows [][]string) {
	keyboardRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		keyboardRows = append(keyboardRows, buttons)
	}
	c.mainKeyboard = tgbotapi.NewReplyKeyboard(keyboardRows...)
	c.mainKeyboard.ResizeKeyboard = true
	c.hasMainKeyboard = true
}

func (c *Client) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if c.hasMainKeyboard {
		msg.ReplyMarkup = c.mainKeyboard
	}
	_, err := c.bot.Send(msg)
	return err
}

func (c *Client) SendDocument(doc telegrampkg.Document) error {
	d := tgbotapi.NewDocument(doc.ChatID, tgbotapi.FileBytes{
		Name:  doc.Filename,
		Bytes: doc.FileBody,
	})
	d.Caption = doc.Caption
	_, err := c.bot.Send(d)
	return err
}

func (c *Client) RegisterMessageHandler(handler func(telegrampkg.MessageEvent)) {
	c.onMessage = handler
}

func (c *Client) RegisterCallbackHandler(handler func(telegrampkg.CallbackEvent)) {
	c.onCallback = handler
}

// Run consumes the long-polling update stream until Close is called. Each
// update is dispatched to completion before the next one is read, so
// handlers never observe interleaved state mutations.
func (c *Client) Run() error {
	if c.bot == nil {
		return fmt.Errorf("telegram session is not initialized")
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = c.pollTimeoutSec
	updates := c.bot.GetUpdatesChan(u)
	slog.Info("telegram update loop started", "poll_timeout_sec", c.pollTimeoutSec)
	for {
		select {
		case <-c.stop:
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			c.dispatch(update)
		}
	}
}

func (c *Client) dispatch(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		c.dispatchCallback(update.CallbackQuery)
		return
	}
	if update.Message != nil {
		c.dispatchMessage(update.Message)
	}
}

func (c *Client) dispatchMessage(msg *tgbotapi.Message) {
	if msg.From == nil || c.onMessage == nil {
		return
	}
	chatID := msg.Chat.ID
	ev := telegrampkg.MessageEvent{
		UserID:      msg.From.ID,
		DisplayName: preferredTelegramName(msg.From),
		Text:        msg.Text,
		Reply: func(text string) error {
			return c.SendMessage(chatID, text)
		},
		ReplyInline: func(text string, rows [][]telegrampkg.Button) error {
			m := tgbotapi.NewMessage(chatID, text)
			m.ReplyMarkup = inlineMarkup(rows)
			_, err := c.bot.Send(m)
			return err
		},
	}
	if msg.IsCommand() {
		ev.Command = msg.Command()
	}
	c.onMessage(ev)
}

func (c *Client) dispatchCallback(cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil || c.onCallback == nil {
		return
	}
	// Acknowledge first so the client stops showing the loading spinner.
	if _, err := c.bot.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		slog.Warn("failed to answer callback query", "error", err, "callback_id", cq.ID)
	}
	chatID := cq.Message.Chat.ID
	messageID := cq.Message.MessageID
	c.onCallback(telegrampkg.CallbackEvent{
		UserID:      cq.From.ID,
		DisplayName: preferredTelegramName(cq.From),
		Data:        cq.Data,
		Edit: func(text string) error {
			edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
			_, err := c.bot.Send(edit)
			return err
		},
	})
}

func inlineMarkup(rows [][]telegrampkg.Button) tgbotapi.InlineKeyboardMarkup {
	keyboardRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		keyboardRows = append(keyboardRows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboardRows...)
}

func preferredTelegramName(u *tgbotapi.User) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.UserName != "" {
		return u.UserName
	}
	return strconv.FormatInt(u.ID, 10)
}
