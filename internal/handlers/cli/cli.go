package cli

import (
	"context"
	"os"

	"github.com/gabapcia/txinsight/internal/insight"
	"github.com/gabapcia/txinsight/internal/network"
	"github.com/gabapcia/txinsight/internal/operation"
	"github.com/gabapcia/txinsight/internal/walletstate"

	"github.com/urfave/cli/v3"
)

// Server is a background server with a start/close lifecycle.
type Server interface {
	Start(ctx context.Context) error
	Close()
}

// Dependencies groups the services used by the commands.
type Dependencies struct {
	Server     Server
	Insights   insight.Service
	Session    walletstate.Service
	Operations operation.Service
	Networks   *network.Registry
}

// Run initializes and executes the txinsight CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Serves the snap JSON-RPC endpoint.
//   - `insight`: Derives the insight of a single transaction.
//   - `site`: Drives the wallet session (status, connect, hello, switch, send, operations, watch).
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}

func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txinsight",
		Description:           "Transaction insight snap and companion site tooling.",
		Usage:                 "txinsight [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(deps.Server),
			insightCommand(deps.Insights),
			siteCommand(deps.Session, deps.Operations, deps.Networks),
		},
	}
}
