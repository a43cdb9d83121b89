package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"notes-backend/internal/model"
	"notes-backend/internal/repository/memory"
	svc "notes-backend/internal/service"
)

// Handler реализует REST API для работы с заметками
type Handler struct {
	noteService svc.NoteService
}

// NewHandler создает новый экземпляр REST хэндлера
func NewHandler(noteService svc.NoteService) *Handler {
	return &Handler{
		noteService: noteService,
	}
}

// Register регистрирует маршруты API на переданном mux.
// Паттерны с методом и {$} требуют Go 1.22+ (расширенный http.ServeMux).
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.HealthCheck)
	mux.HandleFunc("POST /notes/{$}", h.CreateNote)
	mux.HandleFunc("GET /notes/{$}", h.ListNotes)
	mux.HandleFunc("GET /notes/{id}", h.GetNote)
	mux.HandleFunc("PUT /notes/{id}", h.UpdateNote)
	mux.HandleFunc("DELETE /notes/{id}", h.DeleteNote)
}

// CreateNoteRequest тело запроса на создание заметки
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest тело запроса на обновление заметки.
// Указатели отличают "поле не передано" (nil) от переданного значения,
// включая пустую строку
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// detailResponse тело ответа об ошибке: {"detail": "..."}
type detailResponse struct {
	Detail string `json:"detail"`
}

// messageResponse тело ответа health check: {"message": "..."}
type messageResponse struct {
	Message string `json:"message"`
}

// HealthCheck возвращает статус сервиса
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Healthy"})
}

// CreateNote создает новую заметку
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// Вызываем бизнес-логику
	note, err := h.noteService.Create(r.Context(), req.Title, req.Content)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// GetNote возвращает заметку по её UUID
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.noteService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// ListNotes возвращает список всех заметок
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	// Репозиторий возвращает пустой срез, а не nil: клиент получает []
	writeJSON(w, http.StatusOK, notes)
}

// UpdateNote обновляет существующую заметку.
// Непереданные поля остаются без изменений; updated_at обновляется всегда
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req UpdateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.noteService.Update(r.Context(), r.PathValue("id"), req.Title, req.Content)
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// DeleteNote удаляет заметку по UUID
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.noteService.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, err)
		return
	}

	// Успешное удаление — 204 без тела
	w.WriteHeader(http.StatusNoContent)
}

// handleError конвертирует доменные ошибки в HTTP статусы.
// Репозиторий и сервис ничего не знают об HTTP: весь маппинг
// "ошибка → статус" живет только здесь
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, memory.ErrNoteNotFound):
		// Фиксированный текст ответа — часть контракта API
		writeJSON(w, http.StatusNotFound, detailResponse{Detail: "Note not found"})
	case errors.Is(err, model.ErrEmptyTitle):
		writeJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: err.Error()})
	default:
		// Неожиданные ошибки не глотаем: логируем и отвечаем 500
		log.Printf("[HTTP] Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, detailResponse{Detail: "Internal Server Error"})
	}
}

// decodeJSON декодирует тело запроса в dst.
// При некорректном JSON отвечает 422 (как и при ошибке валидации полей)
// и возвращает false
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, detailResponse{Detail: "Invalid JSON body"})
		return false
	}
	return true
}

// writeJSON сериализует v в тело ответа с указанным статусом
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Статус уже ушел клиенту, остается только залогировать
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}
