package rest

import (
	"log"
	"net/http"

	"notes-backend/internal/service/notes"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Политика CORS сервиса разрешает любые origins, WebSocket — тоже
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsHandler транслирует события заметок подписчикам по WebSocket
type EventsHandler struct {
	events *notes.EventService
}

// NewEventsHandler создает новый экземпляр WebSocket хэндлера событий
func NewEventsHandler(events *notes.EventService) *EventsHandler {
	return &EventsHandler{
		events: events,
	}
}

// Register регистрирует WebSocket эндпоинт на переданном mux
func (h *EventsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /events", h.Subscribe)
}

// Subscribe апгрейдит соединение до WebSocket и отправляет по одному
// JSON-событию NoteEvent на каждое изменение заметок.
// Подписка снимается при закрытии соединения любой из сторон
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам пишет ответ об ошибке
		log.Printf("[WS] Upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ch := h.events.Subscribe()
	defer h.events.Unsubscribe(ch)

	log.Printf("[WS] Subscriber connected: %s", r.RemoteAddr)

	// Читатель нужен только чтобы заметить закрытие соединения клиентом
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("[WS] Write failed for %s: %v", r.RemoteAddr, err)
				return
			}
		case <-done:
			log.Printf("[WS] Subscriber disconnected: %s", r.RemoteAddr)
			return
		case <-r.Context().Done():
			return
		}
	}
}
