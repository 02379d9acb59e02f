// Package command wires the CLI subcommands onto the SMS client.
package command

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SebbieMzingKe/beem-sms-go/beem"
	"github.com/SebbieMzingKe/beem-sms-go/internal/config"
)

func newClient(cfg *config.Config, logger *logrus.Logger, extra ...beem.Option) (*beem.Client, error) {
	opts := []beem.Option{
		beem.WithLogger(logger),
		beem.WithTimeout(cfg.Timeout),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, beem.WithBaseURL(cfg.BaseURL))
	}
	opts = append(opts, extra...)

	return beem.NewClient(beem.Credentials{
		APIKey:    cfg.APIKey,
		SecretKey: cfg.SecretKey,
	}, opts...)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func encodingFromFlag(unicode bool) beem.Encoding {
	if unicode {
		return beem.EncodingUnicode
	}
	return beem.EncodingPlainText
}
