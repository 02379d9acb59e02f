package command

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SebbieMzingKe/beem-sms-go/internal/config"
)

type Send struct {
	Logger *logrus.Logger
}

func (cmd Send) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	var (
		sender     string
		recipients []string
		message    string
		unicode    bool
	)

	c := &cobra.Command{
		Use:   "send",
		Short: "send an sms to one or more recipients",
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := newClient(cfg, cmd.Logger)
			if err != nil {
				return err
			}

			resp, err := client.Send(ctx, sender, recipients, message, encodingFromFlag(unicode))
			if err != nil {
				return err
			}
			return printJSON(resp)
		},
	}

	c.Flags().StringVar(&sender, "sender", "", "sender id or phone number")
	c.Flags().StringSliceVar(&recipients, "recipients", nil, "recipient phone number(s), comma separated")
	c.Flags().StringVar(&message, "message", "", "message body")
	c.Flags().BoolVar(&unicode, "unicode", false, "send as unicode (ucs-2)")
	c.MarkFlagRequired("sender")
	c.MarkFlagRequired("recipients")
	c.MarkFlagRequired("message")

	return c
}
