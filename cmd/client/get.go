package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Получить заметку по ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		status, body, err := doRequest(http.MethodGet, "/notes/"+args[0], nil)
		if err != nil {
			fatal("Get failed", err)
		}
		if status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Unexpected status %d: %s\n", status, body)
			os.Exit(1)
		}
		printJSON(body)
	},
}
