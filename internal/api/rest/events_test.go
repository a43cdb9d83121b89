package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-backend/internal/repository/memory"
	notesService "notes-backend/internal/service/notes"
)

func TestEventsSubscription(t *testing.T) {
	noteRepo := memory.NewRepository()
	events := notesService.NewEventService()
	noteSvc := notesService.NewNoteService(noteRepo, events)

	mux := http.NewServeMux()
	NewHandler(noteSvc).Register(mux)
	NewEventsHandler(events).Register(mux)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "WebSocket dial failed")
	defer conn.Close()

	// Подписка регистрируется в хэндлере уже после рукопожатия -
	// даем ему время добавить канал перед публикацией первого события
	time.Sleep(200 * time.Millisecond)

	resp, err := http.Post(srv.URL+"/notes/", "application/json",
		strings.NewReader(`{"title":"Watched","content":"x"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var event notesService.NoteEvent
	require.NoError(t, conn.ReadJSON(&event), "expected a note event over WebSocket")
	assert.Equal(t, notesService.ActionCreated, event.Action)
	assert.Equal(t, "Watched", event.Note.Title)
	assert.NotEmpty(t, event.Note.ID)
}
