package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/gabapcia/txinsight/internal/network"
	"github.com/gabapcia/txinsight/internal/operation"
	"github.com/gabapcia/txinsight/internal/walletstate"

	"github.com/urfave/cli/v3"
)

// withSession starts the wallet session before action and closes it afterwards.
func withSession(session walletstate.Service, action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if err := session.Start(ctx); err != nil {
			return err
		}
		defer session.Close()

		return action(ctx, c)
	}
}

func networkName(networks *network.Registry, chainID string) string {
	if chainID == "" {
		return "unknown"
	}

	n, ok := networks.Lookup(chainID)
	if !ok {
		return chainID + " (unsupported)"
	}

	return fmt.Sprintf("%s (%s)", n.Name, n.ChainID)
}

func printState(w io.Writer, state walletstate.State, networks *network.Registry, reconnect bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	flavor := "regular"
	if state.IsFlask {
		flavor = "flask"
	}
	fmt.Fprintf(tw, "Wallet:\t%s\n", flavor)

	snap := "not installed"
	if s := state.InstalledSnap; s != nil {
		snap = s.ID
		if s.Version != "" {
			snap += "@" + s.Version
		}
	}
	fmt.Fprintf(tw, "Snap:\t%s\n", snap)
	fmt.Fprintf(tw, "Network:\t%s\n", networkName(networks, string(state.ChainID)))

	if reconnect {
		fmt.Fprintf(tw, "Reconnect:\tavailable\n")
	}
	if state.Err != nil {
		fmt.Fprintf(tw, "Error:\t%s\n", state.Err)
	}
}

// siteCommand groups the commands driving the wallet session, the way the
// companion site does.
//
// Usage example:
//
//	txinsight site switch --chain 0x13881
func siteCommand(session walletstate.Service, operations operation.Service, networks *network.Registry) *cli.Command {
	return &cli.Command{
		Name:        "site",
		Description: "Drive the wallet session: detect the wallet and snap, switch networks and send demo transactions.",
		Usage:       "Companion site actions.",
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Prints the wallet flavor, installed snap and active network.",
				Action: withSession(session, statusAction(session, networks)),
			},
			{
				Name:  "connect",
				Usage: "Installs or reconnects the snap.",
				Action: withSession(session, func(ctx context.Context, c *cli.Command) error {
					if err := session.Run(ctx, "connect snap", session.Connect); err != nil {
						return err
					}

					printState(c.Root().Writer, session.State(), networks, session.ShouldDisplayReconnect())
					return nil
				}),
			},
			{
				Name:  "hello",
				Usage: "Invokes the snap's hello method.",
				Action: withSession(session, func(ctx context.Context, c *cli.Command) error {
					return session.Run(ctx, "send hello", func(ctx context.Context) error {
						res, err := session.SendHello(ctx)
						if err != nil {
							return err
						}

						fmt.Fprintf(c.Root().Writer, "Snap replied: %s\n", res)
						return nil
					})
				}),
			},
			{
				Name:  "switch",
				Usage: "Switches the wallet network. Without --chain it toggles between Goerli and Mumbai.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "chain",
						Usage: "Hex chain id to switch to (e.g., 0x13881)",
					},
				},
				Action: withSession(session, func(ctx context.Context, c *cli.Command) error {
					fn := session.ToggleChain
					if chainID := c.String("chain"); chainID != "" {
						fn = func(ctx context.Context) error {
							return session.SwitchChain(ctx, chainID)
						}
					}

					if err := session.Run(ctx, "switch network", fn); err != nil {
						return err
					}

					fmt.Fprintf(c.Root().Writer, "Network: %s\n", networkName(networks, string(session.State().ChainID)))
					return nil
				}),
			},
			{
				Name:  "send",
				Usage: "Sends a canned demo transaction through the wallet.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "operation",
						Usage:    "Operation to send (see `site operations`)",
						Required: true,
					},
				},
				Action: withSession(session, func(ctx context.Context, c *cli.Command) error {
					op := operation.Operation(c.String("operation"))

					return session.Run(ctx, "send "+string(op), func(ctx context.Context) error {
						sub, err := operations.Dispatch(ctx, op)
						if err != nil {
							return err
						}

						fmt.Fprintf(c.Root().Writer, "Sent %s on %s: %s\n", sub.Operation, sub.Network, sub.Hash)
						return nil
					})
				}),
			},
			{
				Name:   "operations",
				Usage:  "Lists the canned demo transactions and whether they are offered on the active network.",
				Action: withSession(session, operationsAction(session, networks)),
			},
			{
				Name:   "watch",
				Usage:  "Prints the session state every time it changes. Terminates on Ctrl+C.",
				Action: withSession(session, watchAction(session, networks)),
			},
		},
	}
}

func statusAction(session walletstate.Service, networks *network.Registry) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		printState(c.Root().Writer, session.State(), networks, session.ShouldDisplayReconnect())
		return nil
	}
}

func operationsAction(session walletstate.Service, networks *network.Registry) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		entries, err := operation.Catalog()
		if err != nil {
			return err
		}

		chainID := session.State().ChainID
		n, known := networks.Lookup(string(chainID))

		tw := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
		defer tw.Flush()

		fmt.Fprintf(tw, "OPERATION\tMETHOD\tAVAILABLE\tDESCRIPTION\n")
		for _, e := range entries {
			available := known && e.AvailableOn(chainID) && n.Contract(e.Contract) != ""

			method := e.Method
			if len(e.Calls) > 0 {
				method += " [" + strings.Join(e.Calls, ", ") + "]"
			}

			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Operation, method, yesNo(available), e.Description)
		}

		return nil
	}
}

func watchAction(session walletstate.Service, networks *network.Registry) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w := c.Root().Writer
		updates := make(chan walletstate.State, 16)
		unsubscribe := session.Subscribe(func(s walletstate.State) {
			select {
			case updates <- s:
			default:
			}
		})
		defer unsubscribe()

		printState(w, session.State(), networks, session.ShouldDisplayReconnect())
		for {
			select {
			case <-ctx.Done():
				return nil
			case s := <-updates:
				fmt.Fprintln(w)
				printState(w, s, networks, session.ShouldDisplayReconnect())
			}
		}
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
