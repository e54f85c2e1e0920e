package main

import (
	"github.com/amonks/journey/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the board over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default: 127.0.0.1 and the configured port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr, err := web.ResolveAddr(serveAddr, cfg.Server.Port)
	if err != nil {
		return err
	}

	logger := newLogger()
	store, result := loadStore(cmd, cfg, logger)
	server, err := web.NewServer(web.ServerOptions{
		Handler: web.NewHandler(web.Options{
			Store:    store,
			Fallback: result.Fallback,
			Logger:   logger,
		}),
		Logger: logger,
	})
	if err != nil {
		return err
	}
	return server.Serve(addr)
}
