package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/txinsight/internal/config"
	"github.com/gabapcia/txinsight/internal/handlers/cli"
	"github.com/gabapcia/txinsight/internal/handlers/rpc"
	"github.com/gabapcia/txinsight/internal/infra/simulation/alchemy"
	"github.com/gabapcia/txinsight/internal/infra/snaphost"
	redisstore "github.com/gabapcia/txinsight/internal/infra/storage/redis"
	"github.com/gabapcia/txinsight/internal/infra/wallet"
	"github.com/gabapcia/txinsight/internal/insight"
	"github.com/gabapcia/txinsight/internal/network"
	"github.com/gabapcia/txinsight/internal/operation"
	"github.com/gabapcia/txinsight/internal/pkg/logger"
	"github.com/gabapcia/txinsight/internal/pkg/resilience/retry"
	"github.com/gabapcia/txinsight/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/txinsight/internal/pkg/transport/http"
	"github.com/gabapcia/txinsight/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txinsight/internal/snap"
	"github.com/gabapcia/txinsight/internal/walletstate"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	networks, err := network.Default()
	if err != nil {
		return err
	}

	var insightOpts []insight.Option
	if cfg.Redis.CacheEnabled() {
		cache, err := redisstore.NewClient(ctx,
			cfg.Redis.Addr,
			cfg.Redis.Username,
			cfg.Redis.Password,
			cfg.Redis.DB,
			redisstore.WithSimulationTTL(cfg.Redis.TTL),
		)
		if err != nil {
			return fmt.Errorf("connect simulation cache: %w", err)
		}
		defer cache.Close()

		insightOpts = append(insightOpts, insight.WithSimulationCache(cache))
	}

	simulators := alchemy.NewSimulators(networks, cfg.Simulation.APIKey, cfg.Simulation.Chains,
		httptransport.WithTimeout(cfg.Simulation.Timeout),
		httptransport.WithRetryMax(cfg.Simulation.Retries),
		httptransport.WithRequestLogging(),
	)
	insights := insight.New(simulators, insightOpts...)

	host := snaphost.NewClient(jsonrpc.NewClient(cfg.Snap.HostURL))
	server := rpc.NewServer(cfg.Server.Address, snap.New(host, insights),
		rpc.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
	)

	walletOpts := []wallet.Option{wallet.WithPollInterval(cfg.Wallet.PollInterval)}
	if cfg.Wallet.EventsURL != "" {
		walletOpts = append(walletOpts, wallet.WithEventStream(cfg.Wallet.EventsURL))
	}
	provider := wallet.NewClient(
		jsonrpc.NewClient(cfg.Wallet.RPCURL,
			httptransport.WithTimeout(cfg.Wallet.Timeout),
		),
		walletOpts...,
	)

	probeRetry := retry.New(
		retry.WithAttempts(cfg.Wallet.ProbeAttempts),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "wallet probe failed, retrying", "attempt", attempt, "error", err)
		}),
	)
	session := walletstate.New(provider, networks,
		walletstate.WithSnap(cfg.Snap.ID, cfg.Snap.Version),
		walletstate.WithRetry(probeRetry),
		walletstate.WithStore(walletstate.NewStore(walletstate.WithErrorClearDelay(cfg.Snap.ErrorClearDelay))),
	)

	return cli.Run(ctx, cli.Dependencies{
		Server:     server,
		Insights:   insights,
		Session:    session,
		Operations: operation.New(provider, networks),
		Networks:   networks,
	})
}
