package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jejutic/mafia_server/pkg/gameserver"
	"github.com/rs/zerolog"
)

const sendTrials = 2

// tgBotServer is the Telegram transport of the mafia server
type tgBotServer struct {
	*tgbotapi.BotAPI
	log zerolog.Logger
}

func (tbs tgBotServer) GetUpdatesChan() <-chan tgbotapi.Update {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return tbs.BotAPI.GetUpdatesChan(u)
}

func (tbs tgBotServer) UpdateToMessage(update tgbotapi.Update) *gameserver.UserMessage {
	if update.Message == nil { // ignore non-Message updates
		return nil
	}

	return &gameserver.UserMessage{
		User:    update.Message.Chat.ID,
		Text:    update.Message.Text,
		Command: update.Message.IsCommand(),
	}
}

func (tbs tgBotServer) SendMessage(msg gameserver.ServerMessage) {
	tbs.send(messageConfig(msg))
}

func (tbs tgBotServer) send(c tgbotapi.Chattable) {
	var err error
	for i := 0; i < sendTrials; i++ {
		if _, err = tbs.Send(c); err == nil {
			return
		}
		tbs.log.Warn().Err(err).Int("trial", i+1).Msg("unable to send message")
	}
	tbs.log.Error().Err(err).Msg("message dropped")
}

// messageConfig turns options into a reply keyboard with one button per row
func messageConfig(msg gameserver.ServerMessage) tgbotapi.MessageConfig {
	msgConfig := tgbotapi.NewMessage(msg.User, msg.Text)

	if msg.Options != nil {
		if len(msg.Options) == 0 {
			msgConfig.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		} else {
			var keyboard [][]tgbotapi.KeyboardButton
			for _, c := range msg.Options {
				keyboard = append(keyboard, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(c)))
			}
			msgConfig.ReplyMarkup = tgbotapi.NewReplyKeyboard(keyboard...)
		}
	}
	return msgConfig
}

func (tbs tgBotServer) GetDefaultNick(user int64) string {
	chat, err := tbs.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: user},
	})
	if err != nil {
		tbs.log.Debug().Err(err).Int64("user", user).Msg("no default nick")
		return "unspecified"
	}
	return chat.UserName
}
