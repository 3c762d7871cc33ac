package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsphweid/ukulala/analytics"
	"github.com/jsphweid/ukulala/constants"
	"github.com/jsphweid/ukulala/data"
	"github.com/jsphweid/ukulala/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addrFlag string

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":"+constants.GetPort(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		tables, err := data.Tables()
		if err != nil {
			return err
		}
		ps, err := data.Progressions()
		if err != nil {
			return err
		}
		store, err := openStore(ctx, constants.GetPrefsFlushDelay())
		if err != nil {
			return err
		}
		// flush with a fresh context, ctx is already done by then
		defer closeStore(context.Background(), store)

		srv := server.New(tables, ps, store, analytics.NewLogTracker(logger), logger)
		logger.Info("serving", zap.String("addr", addrFlag), zap.String("backend", backendFlag))
		return server.Run(ctx, addrFlag, srv.Handler(constants.GetCORSOrigins()))
	},
}
