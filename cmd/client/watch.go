package main

import (
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Подписаться на события изменения заметок",
	Long:  `Открывает WebSocket соединение с /events и печатает каждое событие (created/updated/deleted) по мере поступления. Ctrl+C для выхода.`,
	Run: func(cmd *cobra.Command, args []string) {
		// http://host:port -> ws://host:port/events
		wsURL := strings.Replace(serverAddr, "http", "ws", 1) + "/events"

		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			fatal("Failed to connect to "+wsURL, err)
		}
		defer conn.Close()

		log.Printf("Connected to %s, waiting for events...", wsURL)

		// Ctrl+C закрывает соединение и завершает чтение
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		go func() {
			<-interrupt
			conn.Close()
		}()

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Printf("Connection closed: %v", err)
				return
			}

			printJSON(message)
		}
	},
}
