package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/svcguard/cmd/app/commands"
	"github.com/allisson/svcguard/internal/app"
	"github.com/allisson/svcguard/internal/config"
)

func getSigningCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-service-key",
			Usage: "Generate a shared secret for a calling service",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "service-id",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Identifier of the calling service (e.g., billing-api)",
				},
				&cli.IntFlag{
					Name:    "bytes",
					Aliases: []string{"b"},
					Value:   32,
					Usage:   "Number of random bytes in the generated secret",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateServiceKey(
					commands.DefaultIO().Writer,
					cmd.String("service-id"),
					int(cmd.Int("bytes")),
				)
			},
		},
		{
			Name:  "sign-request",
			Usage: "Compute the signature headers for a request using the configured identity",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "method",
					Aliases: []string{"m"},
					Value:   "GET",
					Usage:   "HTTP method of the request",
				},
				&cli.StringFlag{
					Name:     "path",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Request path without query string (e.g., /v1/records)",
				},
				&cli.StringFlag{
					Name:    "body",
					Aliases: []string{"d"},
					Value:   "",
					Usage:   "Raw request body",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				signer, err := container.OutboundSigner()
				if err != nil {
					return err
				}

				return commands.RunSignRequest(
					signer,
					commands.DefaultIO().Writer,
					cmd.String("method"),
					cmd.String("path"),
					cmd.String("body"),
				)
			},
		},
	}
}
