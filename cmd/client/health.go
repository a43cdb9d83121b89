package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить доступность сервиса",
	Run: func(cmd *cobra.Command, args []string) {
		status, body, err := doRequest(http.MethodGet, "/", nil)
		if err != nil {
			fatal("Health check failed", err)
		}
		if status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Unexpected status %d\n", status)
			os.Exit(1)
		}
		printJSON(body)
	},
}
