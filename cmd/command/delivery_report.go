package command

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SebbieMzingKe/beem-sms-go/internal/config"
)

type DeliveryReport struct {
	Logger *logrus.Logger
}

func (cmd DeliveryReport) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	var (
		recipient string
		requestID int64
	)

	c := &cobra.Command{
		Use:   "delivery-report",
		Short: "fetch the delivery state of a sent message",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient(cfg, cmd.Logger)
			if err != nil {
				return err
			}

			resp, err := client.DeliveryReport(ctx, recipient, requestID)
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}

	c.Flags().StringVar(&recipient, "recipient", "", "recipient phone number")
	c.Flags().Int64Var(&requestID, "request-id", 0, "request id returned by send")
	c.MarkFlagRequired("recipient")
	c.MarkFlagRequired("request-id")

	return c
}
