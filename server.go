package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Quarmire/chord/chord"
	"github.com/Quarmire/chord/node/server"
	"github.com/Quarmire/chord/node/transport"
	"github.com/Quarmire/chord/router"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
)

// serve exposes core over HTTP/JSON and gRPC on the same listener until ctx is done.
func serve(ctx context.Context, lis net.Listener, core chord.Core, shutdownTimeout time.Duration, logger logr.Logger) error {
	grpcs := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	transport.RegisterRingServer(grpcs, server.New(core, logger))

	srv := &http.Server{
		Handler:           h2c.NewHandler(router.New(grpcs, core, logger), &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()
	logger.Info("server listening", "addr", lis.Addr().String(), "max_id", core.MaxID())

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	grpcs.Stop()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
