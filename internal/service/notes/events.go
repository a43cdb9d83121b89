package notes

import (
	"sync"

	"notes-backend/internal/model"
)

// Действия, с которыми публикуются события заметок
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// NoteEvent описывает изменение заметки для подписчиков
type NoteEvent struct {
	Action string     `json:"action"` // created, updated или deleted
	Note   model.Note `json:"note"`   // Состояние заметки после изменения (для deleted — последнее известное)
}

// EventService управляет подписчиками на события изменения заметок
type EventService struct {
	subscribers map[chan NoteEvent]bool
	mu          sync.RWMutex
}

// NewEventService создает новый экземпляр EventService
func NewEventService() *EventService {
	return &EventService{
		subscribers: make(map[chan NoteEvent]bool),
	}
}

// Subscribe добавляет нового подписчика и возвращает канал для получения событий
func (s *EventService) Subscribe() chan NoteEvent {
	ch := make(chan NoteEvent, 10) // Буферизованный канал для защиты от backpressure
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[ch] = true
	return ch
}

// Unsubscribe удаляет подписчика и закрывает его канал
func (s *EventService) Unsubscribe(ch chan NoteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subscribers[ch]; ok {
		close(ch)
		delete(s.subscribers, ch)
	}
}

// Publish отправляет событие всем подписчикам
// Если канал подписчика переполнен, событие пропускается (защита от backpressure)
func (s *EventService) Publish(event NoteEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subscribers {
		select {
		case ch <- event:
			// Событие успешно отправлено
		default:
			// Канал переполнен, пропускаем (защита от backpressure)
		}
	}
}
