package model

import (
	"errors"
	"strings"
	"time"
)

// ErrEmptyTitle возвращается при попытке сохранить заметку без заголовка
var ErrEmptyTitle = errors.New("title cannot be empty")

// Note представляет заметку (доменная модель)
// JSON-теги определяют форму заметки на проводе (REST API)
type Note struct {
	ID        string    `json:"id"`         // UUID заметки
	Title     string    `json:"title"`      // Заголовок заметки
	Content   string    `json:"content"`    // Содержание заметки
	CreatedAt time.Time `json:"created_at"` // Дата создания (RFC 3339, UTC)
	UpdatedAt time.Time `json:"updated_at"` // Дата последнего обновления (RFC 3339, UTC)
}

// Validate проверяет валидность заметки
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// IsEmpty проверяет, пуста ли заметка
func (n *Note) IsEmpty() bool {
	return n.ID == "" && n.Title == "" && n.Content == ""
}
