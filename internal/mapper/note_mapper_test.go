package mapper_test

import (
	"testing"
	"time"

	"notes-app-be/internal/entity"
	"notes-app-be/internal/mapper"
	"notes-app-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNoteMapper(t *testing.T) {
	m := mapper.NewNoteMapper()

	t.Run("nil passes through", func(t *testing.T) {
		assert.Nil(t, m.ToEntity(nil))
		assert.Nil(t, m.ToModel(nil))
	})

	t.Run("model to entity and back preserves fields", func(t *testing.T) {
		now := time.Now()
		row := &model.Note{
			Id:        uuid.New(),
			Title:     "title",
			Content:   "content",
			CreatedAt: now.Add(-time.Minute),
			UpdatedAt: now,
		}

		e := m.ToEntity(row)
		assert.Equal(t, row.Id, e.Id)
		assert.Equal(t, row.Title, e.Title)
		assert.Equal(t, row.Content, e.Content)
		assert.True(t, row.CreatedAt.Equal(e.CreatedAt))
		assert.True(t, row.UpdatedAt.Equal(e.UpdatedAt))

		back := m.ToModel(e)
		assert.Equal(t, row, back)
	})

	t.Run("slice helpers keep order", func(t *testing.T) {
		rows := []*model.Note{
			{Id: uuid.New(), Title: "a"},
			{Id: uuid.New(), Title: "b"},
		}
		entities := m.ToEntities(rows)
		assert.Len(t, entities, 2)
		assert.Equal(t, "a", entities[0].Title)
		assert.Equal(t, "b", entities[1].Title)

		models := m.ToModels([]*entity.Note{entities[1], entities[0]})
		assert.Equal(t, "b", models[0].Title)
		assert.Equal(t, "a", models[1].Title)
	})
}
