package cmd

import (
	"github.com/jsphweid/chordwheel/logger"
	"github.com/jsphweid/chordwheel/server"
	"github.com/spf13/cobra"
)

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (defaults to PORT)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the JSON API",
	Long:  `Serves the wheel, key, chord and export queries over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			cfg.Port = servePort
		}
		if err := logger.InitSentry(cfg.SentryDSN, cfg.Environment, ""); err != nil {
			logger.Warn("sentry disabled", logger.Fields{"error": err.Error()})
		}
		defer logger.Flush()

		err := server.New(cfg).ListenAndServe()
		logger.Error("server stopped", err, nil)
		return err
	},
}
