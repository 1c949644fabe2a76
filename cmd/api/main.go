package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// @title Animal Shelter Dashboard API
// @version 1.0
// @description Dashboard de outcomes del refugio: filtros por tipo de rescate, tabla, top breeds y mapa.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "api",
		Short:         "Animal shelter outcomes dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		// sin subcomando => serve (compat con `go run ./cmd/api`)
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), "")
		},
	}

	root.AddCommand(serveCmd())
	root.AddCommand(seedCmd())
	return root
}
