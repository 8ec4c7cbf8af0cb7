package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/txinsight/internal/pkg/logger"
	"github.com/gabapcia/txinsight/internal/pkg/x/chflow"

	"github.com/gorilla/websocket"
)

const chainChangedEvent = "chainChanged"

// event is a provider notification pushed on the event stream, e.g.
// {"method":"chainChanged","params":["0x5"]}.
type event struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// chainID extracts the chain id from a chainChanged event. Both the bare
// string and the single-element array forms are accepted.
func (e event) chainID() (string, bool) {
	if e.Method != chainChangedEvent {
		return "", false
	}

	var id string
	if err := json.Unmarshal(e.Params, &id); err == nil {
		return id, id != ""
	}

	var ids []string
	if err := json.Unmarshal(e.Params, &ids); err == nil && len(ids) > 0 && ids[0] != "" {
		return ids[0], true
	}

	return "", false
}

// WatchChain implements walletstate.Provider. Chain changes come from the
// event stream when one is configured, and from polling `eth_chainId`
// otherwise. The channel is closed when ctx is done or the stream ends.
func (c *client) WatchChain(ctx context.Context) (<-chan string, error) {
	if c.eventsURL != "" {
		return c.watchStream(ctx)
	}

	return c.watchPoll(ctx), nil
}

func (c *client) watchStream(ctx context.Context) (<-chan string, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.eventsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial event stream: %w", err)
	}

	chainCh := make(chan string)
	go func() {
		defer close(chainCh)
		defer conn.Close()

		stop := context.AfterFunc(ctx, func() { conn.Close() })
		defer stop()

		for {
			var e event
			if err := conn.ReadJSON(&e); err != nil {
				switch {
				case ctx.Err() != nil:
				case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
					logger.Info(ctx, "event stream closed by the wallet")
				default:
					logger.Warn(ctx, "event stream failed", "error", err)
				}
				return
			}

			chainID, ok := e.chainID()
			if !ok {
				continue
			}

			if !chflow.Send(ctx, chainCh, chainID) {
				return
			}
		}
	}()

	return chainCh, nil
}

func (c *client) watchPoll(ctx context.Context) <-chan string {
	chainCh := make(chan string)
	go func() {
		defer close(chainCh)

		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		var last string
		for {
			chainID, err := c.ChainID(ctx)
			switch {
			case err != nil:
				if ctx.Err() != nil {
					return
				}
				logger.Warn(ctx, "failed to poll chain id", "error", err)
			case !strings.EqualFold(chainID, last):
				last = chainID
				if !chflow.Send(ctx, chainCh, chainID) {
					return
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return chainCh
}
