package command

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SebbieMzingKe/beem-sms-go/beem"
	"github.com/SebbieMzingKe/beem-sms-go/internal/config"
)

type SendBulk struct {
	Logger *logrus.Logger
}

func (cmd SendBulk) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	var (
		sender     string
		recipients []string
		message    string
		unicode    bool
		batchSize  int
	)

	c := &cobra.Command{
		Use:   "send-bulk",
		Short: "send an sms to a large recipient list in batches",
		RunE: func(_ *cobra.Command, _ []string) error {
			var extra []beem.Option
			if batchSize > 0 {
				extra = append(extra, beem.WithBatchSize(batchSize))
			}

			client, err := newClient(cfg, cmd.Logger, extra...)
			if err != nil {
				return err
			}

			responses, err := client.SendBulk(ctx, sender, recipients, message, encodingFromFlag(unicode))
			if err != nil {
				return err
			}
			return printJSON(responses)
		},
	}

	c.Flags().StringVar(&sender, "sender", "", "sender id or phone number")
	c.Flags().StringSliceVar(&recipients, "recipients", nil, "recipient phone numbers, comma separated")
	c.Flags().StringVar(&message, "message", "", "message body")
	c.Flags().BoolVar(&unicode, "unicode", false, "send as unicode (ucs-2)")
	c.Flags().IntVar(&batchSize, "batch-size", 0, "recipients per request (default 100)")
	c.MarkFlagRequired("sender")
	c.MarkFlagRequired("recipients")
	c.MarkFlagRequired("message")

	return c
}
