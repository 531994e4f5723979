package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jrgriffin/site/internal/adapters/cli"
	"github.com/jrgriffin/site/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(st *state) *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := st.newApp()
			if err != nil {
				return err
			}

			ln, err := net.Listen("tcp", st.cfg.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", st.cfg.Addr, err)
			}

			out := cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintSuccess("Serving on http://%s (%s)", displayAddr(ln.Addr()), st.cfg.Mode())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, ln, app.Handler(), logger.L())
		},
	}

	c.Flags().String("addr", ":8080", "listen address")
	c.Flags().Bool("dev", false, "development mode: show error details, disable caching")
	return c
}

// serve runs until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server.started", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("server.stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("server.stopped")
	return nil
}

func displayAddr(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if ok && tcp.IP.IsUnspecified() {
		return fmt.Sprintf("localhost:%d", tcp.Port)
	}
	return addr.String()
}
