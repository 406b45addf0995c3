package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"notes-app-be/internal/apperr"
	"notes-app-be/internal/dto"
	"notes-app-be/internal/entity"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/specification"
	"notes-app-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	List(ctx context.Context, limit int) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

// List returns notes newest first. A limit of zero or less returns everything;
// the page renderer passes its fixed cap.
func (s *noteService) List(ctx context.Context, limit int) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{Limit: limit},
	)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		res[i] = toNoteResponse(n)
	}
	return res, nil
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" {
		return nil, apperr.Validation("title is required")
	}
	if content == "" {
		return nil, apperr.Validation("content is required")
	}

	now := time.Now()
	note := entity.Note{
		Id:        uuid.New(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperr.Persistence(err)
	}

	s.publishEvent(ctx, "NOTE_CREATED", &note)

	return toNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if note == nil {
		return nil, apperr.ErrNotFound
	}

	// Merge supplied fields over the stored record; absent fields keep their
	// current values.
	if req.Title != nil {
		note.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		note.Content = strings.TrimSpace(*req.Content)
	}
	if note.Title == "" {
		return nil, apperr.Validation("title is required")
	}
	if note.Content == "" {
		return nil, apperr.Validation("content is required")
	}

	note.UpdatedAt = time.Now()
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperr.Persistence(err)
	}

	s.publishEvent(ctx, "NOTE_UPDATED", note)

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return apperr.Persistence(err)
	}
	if note == nil {
		return apperr.ErrNotFound
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return apperr.Persistence(err)
	}

	s.publishEvent(ctx, "NOTE_DELETED", note)

	return nil
}

// publishEvent emits a lifecycle event for the activity log. Failures are
// logged and swallowed so the request itself never fails on the event path.
func (s *noteService) publishEvent(ctx context.Context, eventType string, note *entity.Note) {
	if s.publisherService == nil {
		return
	}

	msg := dto.NoteEventMessage{
		Type:   eventType,
		NoteId: note.Id,
		Title:  note.Title,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Warn("note_service", "Failed to marshal note event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("note_service", "Failed to publish note event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        n.Id,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
