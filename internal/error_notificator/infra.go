package error_notificator

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegram rejects longer messages
const maxMessageRunes = 4096

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Infra delivers reports to a fixed set of Telegram chats.
type Infra struct {
	bot     sender
	chatIDs []int64
}

func NewInfra(token string, chatIDs []int64) (*Infra, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram alert bot: %w", err)
	}
	return &Infra{bot: bot, chatIDs: chatIDs}, nil
}

func (i *Infra) Notify(ctx context.Context, source string, err error, details string) error {
	text := fmt.Sprintf(
		"❗ Error in %s\n\nError: %v\n\nDetails: %s",
		source,
		err,
		details,
	)
	if r := []rune(text); len(r) > maxMessageRunes {
		text = string(r[:maxMessageRunes-1]) + "…"
	}

	var errs []error
	for _, id := range i.chatIDs {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if _, sendErr := i.bot.Send(tgbotapi.NewMessage(id, text)); sendErr != nil {
			errs = append(errs, fmt.Errorf("chat %d: %w", id, sendErr))
		}
	}
	return errors.Join(errs...)
}
