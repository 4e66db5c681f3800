package telegram

import (
	"github.com/ninfea/babylog/internal/config"
	telegrampkg "github.com/ninfea/babylog/internal/telegram"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (telegrampkg.Client, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewClient(c.BotToken, c.PollTimeoutSec), nil
	})
}
