package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать все заметки",
	Run: func(cmd *cobra.Command, args []string) {
		status, body, err := doRequest(http.MethodGet, "/notes/", nil)
		if err != nil {
			fatal("List failed", err)
		}
		if status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Unexpected status %d: %s\n", status, body)
			os.Exit(1)
		}
		printJSON(body)
	},
}
