package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateNoteRequest carries a partial note. Nil fields are left untouched so a
// PUT may supply title, content, or both.
type UpdateNoteRequest struct {
	Id      uuid.UUID
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteEventMessage is the payload published on the note events topic.
type NoteEventMessage struct {
	Type   string    `json:"type"`
	NoteId uuid.UUID `json:"note_id"`
	Title  string    `json:"title"`
}
