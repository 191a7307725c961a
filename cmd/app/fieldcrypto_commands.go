package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/svcguard/cmd/app/commands"
	"github.com/allisson/svcguard/internal/app"
	"github.com/allisson/svcguard/internal/config"
)

func getFieldCryptoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-field-key",
			Usage: "Generate key material for field encryption",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCreateFieldKey(commands.DefaultIO().Writer)
			},
		},
		{
			Name:  "encrypt-field",
			Usage: "Encrypt a field value with the configured key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Plaintext value to encrypt",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				fieldCipher, err := container.FieldCipher()
				if err != nil {
					return err
				}

				return commands.RunEncryptField(
					fieldCipher,
					commands.DefaultIO().Writer,
					cmd.String("value"),
				)
			},
		},
		{
			Name:  "decrypt-field",
			Usage: "Decrypt an encrypted field value with the configured key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Aliases:  []string{"v"},
					Required: true,
					Usage:    "Encrypted value (base64 envelope) to decrypt",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				fieldCipher, err := container.FieldCipher()
				if err != nil {
					return err
				}

				return commands.RunDecryptField(
					fieldCipher,
					commands.DefaultIO().Writer,
					cmd.String("value"),
				)
			},
		},
	}
}
