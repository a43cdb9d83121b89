package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	updateTitle   string
	updateContent string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Обновить заметку",
	Long:  `Обновить заголовок и/или содержание заметки. Непереданные поля остаются без изменений.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Передаем только явно указанные флаги: непереданное поле
		// на сервере означает "оставить без изменений"
		payload := map[string]string{}
		if cmd.Flags().Changed("title") {
			payload["title"] = updateTitle
		}
		if cmd.Flags().Changed("content") {
			payload["content"] = updateContent
		}

		status, body, err := doRequest(http.MethodPut, "/notes/"+args[0], payload)
		if err != nil {
			fatal("Update failed", err)
		}
		if status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "Unexpected status %d: %s\n", status, body)
			os.Exit(1)
		}
		printJSON(body)
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "Новый заголовок")
	updateCmd.Flags().StringVarP(&updateContent, "content", "c", "", "Новое содержание")
}
