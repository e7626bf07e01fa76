package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/monkeyreg/internal/fakeregistry"
	"github.com/zjrosen/monkeyreg/internal/log"
	"github.com/zjrosen/monkeyreg/internal/monkey"
)

var (
	fakeAddr string
	fakeSeed bool
)

var serveFakeCmd = &cobra.Command{
	Use:   "serve-fake",
	Short: "Run an in-memory monkey registry",
	Long: `Run an in-memory implementation of the registry API for local use.

Records live only as long as the process. The server rejects a duplicate
name and species pair with 400 and answers 404 for unknown ids, like the
real service.

Example:
  monkeyreg serve-fake --addr localhost:8000 --seed
  monkeyreg --base-url http://localhost:8000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cleanup, err := initLogging("serve-fake")
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fake := fakeregistry.New()
		if fakeSeed {
			seedFake(fake)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fake registry listening on http://%s\n", fakeAddr)
		return serveFake(ctx, fakeAddr, fake)
	},
}

func init() {
	serveFakeCmd.Flags().StringVar(&fakeAddr, "addr", "localhost:8000", "address to listen on")
	serveFakeCmd.Flags().BoolVar(&fakeSeed, "seed", false, "start with a few sample monkeys")
	rootCmd.AddCommand(serveFakeCmd)
}

// seedFake loads one monkey of each species.
func seedFake(fake *fakeregistry.Server) {
	for _, m := range []monkey.Monkey{
		{Name: "Coco", Species: monkey.Capuchin, AgeYears: 12, FavouriteFruit: "banana", LastCheckupAt: "2024-03-02T09:30:00"},
		{Name: "Kenji", Species: monkey.Macaque, AgeYears: 8, FavouriteFruit: "persimmon"},
		{Name: "Pip", Species: monkey.Marmoset, AgeYears: 3, FavouriteFruit: "grape", LastCheckupAt: "2024-05-20"},
		{Name: "Bruno", Species: monkey.Howler, AgeYears: 15, FavouriteFruit: "fig"},
	} {
		fake.Seed(m)
	}
}

// serveFake serves handler on addr until ctx is done, then shuts down.
func serveFake(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Info(log.CatAPI, "fake registry started", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving fake registry: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down fake registry: %w", err)
	}
	log.Info(log.CatAPI, "fake registry stopped", "addr", addr)
	return nil
}
