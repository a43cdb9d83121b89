package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Удалить заметку по ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		status, body, err := doRequest(http.MethodDelete, "/notes/"+args[0], nil)
		if err != nil {
			fatal("Delete failed", err)
		}
		if status != http.StatusNoContent {
			fmt.Fprintf(os.Stderr, "Unexpected status %d: %s\n", status, body)
			os.Exit(1)
		}
		fmt.Println("Deleted")
	},
}
