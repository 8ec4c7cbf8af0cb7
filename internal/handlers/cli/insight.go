package cli

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/txinsight/internal/insight"

	"github.com/urfave/cli/v3"
)

// insightCommand returns a CLI command that derives the insight of a single
// transaction, as the wallet would show it before signing.
//
// Usage example:
//
//	txinsight insight --chain 0x5 --from 0xABC... --to 0xDEF... --value 0x0 --data 0xd0e30db0
func insightCommand(insights insight.Service) *cli.Command {
	return &cli.Command{
		Name:        "insight",
		Description: "Simulate a transaction and print the assets it moves in and out of the sender.",
		Usage:       "Derives the insight of a transaction. Without --data the transaction is reported as unknown.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "chain",
				Usage:    "Hex chain id (e.g., 0x5)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "from",
				Usage: "Sender address",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Recipient address",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Hex wei value",
				Value: "0x0",
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "Hex calldata",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the insight as returned to the wallet",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			tx := insight.Transaction{
				From:  c.String("from"),
				To:    c.String("to"),
				Value: c.String("value"),
			}
			if c.IsSet("data") {
				tx.Data = c.String("data")
				tx.HasData = true
			}

			res := insights.GetInsights(ctx, tx, c.String("chain"))

			w := c.Root().Writer
			if c.Bool("json") {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			return insight.Render(w, res)
		},
	}
}
