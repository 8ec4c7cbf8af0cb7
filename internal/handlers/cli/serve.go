package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// serveCommand returns a CLI command that serves the snap JSON-RPC endpoint.
//
// Usage example:
//
//	txinsight serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func serveCommand(server Server) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serves the snap entry points (onRpcRequest, onTransaction) over HTTP JSON-RPC.",
		Usage:       "Runs the snap server. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.Start(ctx); err != nil {
				return err
			}
			defer server.Close()

			<-ctx.Done()
			return nil
		},
	}
}
