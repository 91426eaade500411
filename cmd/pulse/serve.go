// ABOUTME: CLI command for hosting the function server.
// ABOUTME: Serves ask-workout-question and send-feedback over HTTP.
package main

import (
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the function server",
	Long: `Start the HTTP function server.

Hosts the endpoints the app and CLI invoke remotely:

  POST /functions/v1/ask-workout-question
  POST /functions/v1/send-feedback

Requests authenticate with a bearer token minted by 'pulse login'.
GEMINI_API_KEY and RESEND_API_KEY configure the providers; endpoints
whose provider key is absent respond that the service is not
configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newLocalFunctions().Serve(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8787", "listen address")
	rootCmd.AddCommand(serveCmd)
}
