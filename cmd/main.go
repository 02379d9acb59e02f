package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SebbieMzingKe/beem-sms-go/cmd/command"
	"github.com/SebbieMzingKe/beem-sms-go/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	const description = "Beem SMS command line client"
	root := &cobra.Command{Use: "beemsms", Short: description, SilenceUsage: true}

	cfg, err := config.Load()
	if err != nil {
		log.WithContext(ctx).Fatal(err)
	}

	logger := log.New()
	logger.SetLevel(cfg.LogLevel)

	root.AddCommand(
		command.Send{Logger: logger}.Command(ctx, cfg),
		command.SendBulk{Logger: logger}.Command(ctx, cfg),
		command.Balance{Logger: logger}.Command(ctx, cfg),
		command.DeliveryReport{Logger: logger}.Command(ctx, cfg),
		command.CallbackServer{Logger: logger}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
