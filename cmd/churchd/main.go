package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/wrapperspb"

	v1 "github.com/kanengo/church/api/church/v1"
	"github.com/kanengo/church/church"
	"github.com/kanengo/church/internal/conf"
	"github.com/kanengo/church/internal/log"
	"github.com/kanengo/church/internal/service"
	"github.com/kanengo/church/middleware"
	"github.com/kanengo/church/middleware/logging"
	"github.com/kanengo/church/middleware/ratelimit"
	"github.com/kanengo/church/middleware/ratelimit/leakybucket"
	"github.com/kanengo/church/middleware/recovery"
	"github.com/kanengo/church/middleware/selector"
	"github.com/kanengo/church/transport/grpc"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "churchd",
		Short:         "Church-encoded boolean conditional service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")

	rootCmd.AddCommand(
		serveCmd(),
		selectCmd(),
		callCmd(),
	)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (*conf.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := conf.Load(path)
	if err != nil {
		return nil, err
	}
	logger, err := log.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.SetLogger(logger)
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve church.v1.Conditional over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := newServer(cfg)
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(ctx)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Stop(stopCtx)
		},
	}
}

func newServer(cfg *conf.Config) *grpc.Server {
	ms := []middleware.Middleware{
		recovery.Recovery(),
		logging.Server(log.Logger()),
	}
	if rl := cfg.Server.RateLimit; rl.Capacity > 0 {
		// health checks are never limited
		ms = append(ms, selector.Server(
			ratelimit.RateLimit(leakybucket.NewLeakyBucket(rl.Capacity, rl.FillRate)),
		).Prefix("/"+v1.ServiceName+"/").Build())
	}

	srv := grpc.NewServer(
		grpc.Address(cfg.Server.Addr),
		grpc.Timeout(cfg.Server.Timeout),
		grpc.Middleware(ms...),
	)
	v1.RegisterConditionalServer(srv, service.NewConditionalService(cfg.Branches))
	return srv
}

func selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <bool>",
		Short: "Run the branch a boolean selects, locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runSelect(cmd.OutOrStdout(), args[0], cfg.Branches)
		},
	}
}

func runSelect(w io.Writer, arg string, branches conf.Branches) error {
	s, err := church.Parse(arg)
	if err != nil {
		return err
	}
	werr, err := church.Select[error](s,
		func() error {
			_, err := fmt.Fprintln(w, branches.True)
			return err
		},
		func() error {
			_, err := fmt.Fprintln(w, branches.False)
			return err
		},
	)
	if err != nil {
		return err
	}
	return werr
}

func callCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <bool>",
		Short: "Ask a running churchd which branch a boolean selects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = cfg.Server.Addr
			}
			timeout, _ := cmd.Flags().GetDuration("timeout")

			s, err := church.Parse(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			conn, err := grpc.DialInsecure(ctx, grpc.WithEndpoint(addr), grpc.WithTimeout(timeout))
			if err != nil {
				return fmt.Errorf("dial %s: %w", addr, err)
			}
			defer conn.Close()

			reply, err := v1.NewConditionalClient(conn).Branch(ctx, wrapperspb.UInt32(service.ToWire(s)))
			if err != nil {
				return err
			}
			log.Debug("[church] call served", zap.String("addr", addr), zap.Stringer("selector", s))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), reply.GetValue())
			return err
		},
	}
	cmd.Flags().String("addr", "", "server address, defaults to server.addr from config")
	cmd.Flags().Duration("timeout", 3*time.Second, "call timeout")
	return cmd
}
