package telegram

import "context"

// Button is one inline-keyboard button: Label is shown to the user, Data
// comes back in the callback event when pressed.
type Button struct {
	Label string
	Data  string
}

type Document struct {
	ChatID   int64
	Caption  string
	Filename string
	FileBody []byte
}

// MessageEvent is a plain text message or command from an authenticated
// sender. Reply answers with the persistent main keyboard attached;
// ReplyInline answers with an inline keyboard built from rows of buttons.
type MessageEvent struct {
	UserID      int64
	DisplayName string
	Text        string
	Command     string
	Reply       func(text string) error
	ReplyInline func(text string, rows [][]Button) error
}

// CallbackEvent is an inline-keyboard button press. Edit rewrites the
// message the keyboard was attached to, which also removes the keyboard.
type CallbackEvent struct {
	UserID      int64
	DisplayName string
	Data        string
	Edit        func(text string) error
}

type Client interface {
	Connect(ctx context.Context) error
	Close() error
	BotUsername() (string, error)
	SetMainKeyboard(rows [][]string)
	SendMessage(chatID int64, text string) error
	SendDocument(doc Document) error
	RegisterMessageHandler(handler func(MessageEvent))
	RegisterCallbackHandler(handler func(CallbackEvent))
	Run() error
}
