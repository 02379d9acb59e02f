package command

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SebbieMzingKe/beem-sms-go/internal/config"
)

type Balance struct {
	Logger *logrus.Logger
}

func (cmd Balance) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "show the vendor sms credit balance",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient(cfg, cmd.Logger)
			if err != nil {
				return err
			}

			resp, err := client.Balance(ctx)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}
}
