package main

import (
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jejutic/mafia_server/pkg/gameserver"
	"github.com/jejutic/mafia_server/pkg/roles"
	"github.com/jejutic/mafia_server/pkg/scenario"
	"github.com/rs/zerolog"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

type app struct {
	cfg Config
	log zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	var (
		logLevel string
		pretty   bool
	)

	root := &cobra.Command{
		Use:          "mafia_server",
		Short:        "Mafia game server with a Telegram bot front end",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("pretty") {
				cfg.LogPretty = pretty
			}

			log, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogPretty)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (overrides LOG_LEVEL)")
	root.PersistentFlags().BoolVar(&pretty, "pretty", false, "human readable logs (overrides LOG_PRETTY)")

	root.AddCommand(a.serveCmd(), a.simulateCmd())
	return root
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.TelegramToken == "" {
				return oops.Errorf("TELEGRAM_APITOKEN is not set")
			}
			if err := tgbotapi.SetLogger(botLogger{log: a.log.With().Str("component", "telegram").Logger()}); err != nil {
				return oops.Wrapf(err, "set telegram logger")
			}

			bot, err := tgbotapi.NewBotAPI(a.cfg.TelegramToken)
			if err != nil {
				return oops.Wrapf(err, "create telegram bot")
			}
			bot.Debug = a.cfg.BotDebug
			a.log.Info().Str("account", bot.Self.UserName).Msg("authorized")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			defer bot.StopReceivingUpdates()

			s := tgBotServer{BotAPI: bot, log: a.log.With().Str("component", "telegram").Logger()}
			gameserver.Run[tgbotapi.Update](ctx, gameserver.NewMafiaServer[tgbotapi.Update](
				s,
				a.cfg.serverOptions(a.log),
			))
			a.log.Info().Msg("server stopped")
			return nil
		},
	}
}

func (a *app) simulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Replay a scripted game and print what every player sees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			rep, err := scenario.Run(s, roles.Catalog(), a.log)
			if err != nil {
				return oops.Wrapf(err, "run scenario %s", args[0])
			}
			rep.Print(cmd.OutOrStdout(), s.Names())
			return nil
		},
	}
}
