package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

const defaultAddress = "http://localhost:8080"

var serverAddr string

// rootCmd базовая команда CLI клиента
var rootCmd = &cobra.Command{
	Use:   "client",
	Short: "CLI клиент для Notes Backend API",
	Long:  `Консольный клиент для проверки REST API заметок: создание, чтение, обновление, удаление и подписка на события.`,
}

// Execute добавляет дочерние команды и запускает разбор аргументов
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Адрес сервера: флаг, либо переменная окружения SERVER_ADDRESS
	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = defaultAddress
	}
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", addr, "Адрес сервера (http://host:port)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(watchCmd)
}

// doRequest выполняет HTTP запрос к API и возвращает статус и тело ответа
func doRequest(method, path string, body any) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, serverAddr+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, data, nil
}

// printJSON печатает тело ответа с отступами
func printJSON(data []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		// Не JSON - печатаем как есть
		fmt.Println(string(data))
		return
	}
	fmt.Println(buf.String())
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
