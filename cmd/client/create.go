package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var createContent string

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Создать заметку",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		status, body, err := doRequest(http.MethodPost, "/notes/", map[string]string{
			"title":   args[0],
			"content": createContent,
		})
		if err != nil {
			fatal("Create failed", err)
		}
		if status != http.StatusCreated {
			fmt.Fprintf(os.Stderr, "Unexpected status %d: %s\n", status, body)
			os.Exit(1)
		}
		printJSON(body)
	},
}

func init() {
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "Содержание заметки")
}
