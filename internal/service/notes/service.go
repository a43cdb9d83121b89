package notes

import (
	"context"
	"errors"
	"strings"

	"notes-backend/internal/model"
	"notes-backend/internal/repository"
	svc "notes-backend/internal/service"
)

var _ svc.NoteService = (*service)(nil)

type service struct {
	noteRepository repository.NoteRepository
	events         *EventService
}

// NewNoteService создает новый экземпляр сервиса для работы с заметками.
// events может быть nil — тогда события просто не публикуются.
func NewNoteService(noteRepository repository.NoteRepository, events *EventService) svc.NoteService {
	return &service{
		noteRepository: noteRepository,
		events:         events,
	}
}

// Create создает новую заметку с указанными title и content
func (s *service) Create(ctx context.Context, title, content string) (model.Note, error) {
	// Валидация: title не должен быть пустым
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Note{}, model.ErrEmptyTitle
	}

	// Создаем новую заметку; UUID и временные метки проставит репозиторий
	note := model.Note{
		Title:   title,
		Content: content,
	}

	createdNote, err := s.noteRepository.Create(ctx, note)
	if err != nil {
		return model.Note{}, err
	}

	s.publish(ActionCreated, createdNote)

	return createdNote, nil
}

// Get возвращает заметку по её ID
func (s *service) Get(ctx context.Context, id string) (model.Note, error) {
	if id == "" {
		return model.Note{}, errors.New("id cannot be empty")
	}

	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return model.Note{}, err
	}

	return note, nil
}

// List возвращает список всех заметок
func (s *service) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.noteRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// Update обновляет заметку с указанным ID.
// nil-поле означает "оставить без изменений"; заданный title обязан быть
// непустым. Вызов без единого заданного поля — не ошибка: updated_at
// обновляется в любом случае.
//
// Чтение и запись — два отдельных вызова репозитория, без транзакции между
// ними. Update, гоняющийся с Delete по одному id, разрешается в пользу той
// критической секции, что выполнится последней; это принятая гонка.
func (s *service) Update(ctx context.Context, id string, title, content *string) (model.Note, error) {
	if id == "" {
		return model.Note{}, errors.New("id cannot be empty")
	}

	// Получаем существующую заметку
	existingNote, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return model.Note{}, err
	}

	// Переданные поля заменяют прежние значения, остальные копируются
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return model.Note{}, model.ErrEmptyTitle
		}
		existingNote.Title = trimmed
	}
	if content != nil {
		existingNote.Content = *content
	}

	// Валидация обновленной заметки
	if err := existingNote.Validate(); err != nil {
		return model.Note{}, err
	}

	// updated_at проставит репозиторий при замене записи
	updatedNote, err := s.noteRepository.Update(ctx, existingNote)
	if err != nil {
		return model.Note{}, err
	}

	s.publish(ActionUpdated, updatedNote)

	return updatedNote, nil
}

// Delete удаляет заметку по ID
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	note, err := s.noteRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.noteRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ActionDeleted, note)

	return nil
}

// publish отправляет событие подписчикам, если EventService подключен
func (s *service) publish(action string, note model.Note) {
	if s.events == nil {
		return
	}
	s.events.Publish(NoteEvent{Action: action, Note: note})
}
