package command

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SebbieMzingKe/beem-sms-go/internal/api"
	"github.com/SebbieMzingKe/beem-sms-go/internal/config"
)

type CallbackServer struct {
	Logger *logrus.Logger
}

func (cmd CallbackServer) Command(ctx context.Context, _ *config.Config) *cobra.Command {
	var address string

	c := &cobra.Command{
		Use:   "callback-server",
		Short: "run a server receiving delivery report callbacks",
		RunE: func(_ *cobra.Command, _ []string) error {
			gin.SetMode(gin.ReleaseMode)
			return api.New(cmd.Logger).Serve(ctx, address)
		},
	}

	c.Flags().StringVar(&address, "addr", ":8080", "listen address")

	return c
}
