package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-backend/internal/model"
	"notes-backend/internal/repository/memory"
	notesService "notes-backend/internal/service/notes"
)

// newTestMux собирает полный стек Repository → Service → Handler
// на изолированном хранилище для каждого теста
func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	noteRepo := memory.NewRepository()
	noteSvc := notesService.NewNoteService(noteRepo, notesService.NewEventService())

	mux := http.NewServeMux()
	NewHandler(noteSvc).Register(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Healthy"}`, rec.Body.String())
}

func TestNotesCRUDFlow(t *testing.T) {
	mux := newTestMux(t)

	// Создание
	rec := doJSON(t, mux, http.MethodPost, "/notes/", `{"title":"Groceries","content":"Milk, eggs"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID, "created note must carry a generated id")
	assert.Equal(t, "Groceries", created.Title)
	assert.Equal(t, "Milk, eggs", created.Content)
	assert.True(t, created.CreatedAt.Equal(created.UpdatedAt), "created_at must equal updated_at on creation")

	// Чтение
	rec = doJSON(t, mux, http.MethodGet, "/notes/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Content, fetched.Content)

	// Частичное обновление: title не передан и остается прежним
	rec = doJSON(t, mux, http.MethodPut, "/notes/"+created.ID, `{"content":"Milk, eggs, bread"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Groceries", updated.Title)
	assert.Equal(t, "Milk, eggs, bread", updated.Content)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	// Удаление: 204 с пустым телом
	rec = doJSON(t, mux, http.MethodDelete, "/notes/"+created.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// Удаленная заметка недоступна
	rec = doJSON(t, mux, http.MethodGet, "/notes/"+created.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Note not found"}`, rec.Body.String())
}

func TestGetNote_NotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/notes/does-not-exist", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	// Текст ответа фиксирован контрактом API
	assert.Equal(t, `{"detail":"Note not found"}`, strings.TrimSpace(rec.Body.String()))
}

func TestCreateNote_Validation(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "empty title", body: `{"title":"","content":"x"}`},
		{name: "whitespace title", body: `{"title":"   ","content":"x"}`},
		{name: "missing title", body: `{"content":"x"}`},
		{name: "malformed JSON", body: `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, mux, http.MethodPost, "/notes/", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}

	// Невалидные запросы ничего не сохранили
	rec := doJSON(t, mux, http.MethodGet, "/notes/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateNote_Failures(t *testing.T) {
	mux := newTestMux(t)

	// Неизвестный id - 404, заметка не создается
	rec := doJSON(t, mux, http.MethodPut, "/notes/missing", `{"title":"X"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Note not found"}`, rec.Body.String())

	// Явно переданный пустой title - 422
	rec = doJSON(t, mux, http.MethodPost, "/notes/", `{"title":"Valid","content":"c"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, mux, http.MethodPut, "/notes/"+created.ID, `{"title":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Заметка осталась прежней
	rec = doJSON(t, mux, http.MethodGet, "/notes/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "Valid", fetched.Title)
}

func TestUpdateNote_EmptyBodyBumpsTimestamp(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/notes/", `{"title":"Note","content":"c"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Обновление без единого поля - валидный запрос: поля не меняются,
	// updated_at обновляется
	rec = doJSON(t, mux, http.MethodPut, "/notes/"+created.ID, `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Content, updated.Content)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestDeleteNote_NotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodDelete, "/notes/never-created", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Note not found"}`, rec.Body.String())
}

func TestListNotes(t *testing.T) {
	mux := newTestMux(t)

	// Пустое хранилище - пустой массив, не null
	rec := doJSON(t, mux, http.MethodGet, "/notes/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	doJSON(t, mux, http.MethodPost, "/notes/", `{"title":"First","content":""}`)
	doJSON(t, mux, http.MethodPost, "/notes/", `{"title":"Second","content":""}`)

	rec = doJSON(t, mux, http.MethodGet, "/notes/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var notes []model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 2)

	// Порядок не гарантируется - сравниваем как множество заголовков
	titles := map[string]bool{}
	for _, n := range notes {
		titles[n.Title] = true
	}
	assert.True(t, titles["First"] && titles["Second"])
}
