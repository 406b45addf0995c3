package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"notes-app-be/internal/apperr"
	"notes-app-be/internal/dto"
	"notes-app-be/internal/entity"
	"notes-app-be/internal/service"
	"notes-app-be/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(repo *testutil.FakeNoteRepository, pub *testutil.RecordingPublisher) service.INoteService {
	return service.NewNoteService(
		&testutil.FakeRepositoryFactory{Repo: repo},
		pub,
		testutil.NopLogger{},
	)
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	t.Run("assigns id and equal timestamps", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		pub := &testutil.RecordingPublisher{}
		svc := newService(repo, pub)

		res, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
			Title:   "Shopping",
			Content: "Milk, eggs",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.Id)
		assert.Equal(t, "Shopping", res.Title)
		assert.Equal(t, "Milk, eggs", res.Content)
		assert.True(t, res.CreatedAt.Equal(res.UpdatedAt))
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})

		res, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
			Title:   "  Shopping  ",
			Content: "  Milk  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Shopping", res.Title)
		assert.Equal(t, "Milk", res.Content)
	})

	t.Run("rejects empty or whitespace-only fields", func(t *testing.T) {
		cases := []dto.CreateNoteRequest{
			{Title: "", Content: "content"},
			{Title: "title", Content: ""},
			{Title: "   ", Content: "content"},
			{Title: "title", Content: "\t\n"},
		}
		for _, req := range cases {
			repo := testutil.NewFakeNoteRepository()
			svc := newService(repo, &testutil.RecordingPublisher{})

			_, err := svc.Create(context.Background(), &req)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Equal(t, 0, repo.Len(), "nothing may be persisted on validation failure")
		}
	})

	t.Run("publishes NOTE_CREATED", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		pub := &testutil.RecordingPublisher{}
		svc := newService(repo, pub)

		res, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "a", Content: "b"})
		require.NoError(t, err)

		published := pub.Published()
		require.Len(t, published, 1)
		var evt dto.NoteEventMessage
		require.NoError(t, json.Unmarshal(published[0], &evt))
		assert.Equal(t, "NOTE_CREATED", evt.Type)
		assert.Equal(t, res.Id, evt.NoteId)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		pub := &testutil.RecordingPublisher{FailWith: assert.AnError}
		svc := newService(repo, pub)

		_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "a", Content: "b"})
		assert.NoError(t, err)
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("store failure surfaces as persistence error", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		repo.FailWith = assert.AnError
		svc := newService(repo, &testutil.RecordingPublisher{})

		_, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "a", Content: "b"})
		assert.ErrorIs(t, err, apperr.ErrPersistence)
	})
}

func TestUpdate(t *testing.T) {
	seed := func(repo *testutil.FakeNoteRepository) entity.Note {
		created := time.Now().Add(-time.Hour)
		n := entity.Note{
			Id:        uuid.New(),
			Title:     "old title",
			Content:   "old content",
			CreatedAt: created,
			UpdatedAt: created,
		}
		repo.Put(n)
		return n
	}

	t.Run("replaces fields and refreshes updated_at", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})
		before := seed(repo)

		res, err := svc.Update(context.Background(), &dto.UpdateNoteRequest{
			Id:      before.Id,
			Title:   strPtr("new title"),
			Content: strPtr("new content"),
		})
		require.NoError(t, err)
		assert.Equal(t, "new title", res.Title)
		assert.Equal(t, "new content", res.Content)
		assert.True(t, res.CreatedAt.Equal(before.CreatedAt), "created_at is immutable")
		assert.True(t, res.UpdatedAt.After(before.UpdatedAt))
		assert.True(t, res.UpdatedAt.After(res.CreatedAt))
	})

	t.Run("merges partial bodies over the stored record", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})
		before := seed(repo)

		res, err := svc.Update(context.Background(), &dto.UpdateNoteRequest{
			Id:    before.Id,
			Title: strPtr("only title changed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "only title changed", res.Title)
		assert.Equal(t, before.Content, res.Content)
	})

	t.Run("rejects whitespace-only replacement", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})
		before := seed(repo)

		_, err := svc.Update(context.Background(), &dto.UpdateNoteRequest{
			Id:    before.Id,
			Title: strPtr("   "),
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)

		stored := repo.Get(before.Id)
		require.NotNil(t, stored)
		assert.Equal(t, before.Title, stored.Title, "store must be unchanged")
	})

	t.Run("unknown id reports not found and leaves store unchanged", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})
		seed(repo)

		_, err := svc.Update(context.Background(), &dto.UpdateNoteRequest{
			Id:    uuid.New(),
			Title: strPtr("x"),
		})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		assert.Equal(t, 1, repo.Len())
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes by id", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		pub := &testutil.RecordingPublisher{}
		svc := newService(repo, pub)

		res, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "a", Content: "b"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), res.Id))
		assert.Equal(t, 0, repo.Len())

		published := pub.Published()
		require.Len(t, published, 2)
		var evt dto.NoteEventMessage
		require.NoError(t, json.Unmarshal(published[1], &evt))
		assert.Equal(t, "NOTE_DELETED", evt.Type)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})

		err := svc.Delete(context.Background(), uuid.New())
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	seedMany := func(repo *testutil.FakeNoteRepository, n int) {
		base := time.Now().Add(-time.Duration(n) * time.Minute)
		for i := 0; i < n; i++ {
			ts := base.Add(time.Duration(i) * time.Minute)
			repo.Put(entity.Note{
				Id:        uuid.New(),
				Title:     "note",
				Content:   "content",
				CreatedAt: ts,
				UpdatedAt: ts,
			})
		}
	}

	t.Run("orders newest first", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})
		seedMany(repo, 7)

		res, err := svc.List(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, res, 7)
		for i := 1; i < len(res); i++ {
			assert.False(t, res[i].CreatedAt.After(res[i-1].CreatedAt), "list must be created_at descending")
		}
	})

	t.Run("caps the page listing at the given limit", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})
		seedMany(repo, 7)

		res, err := svc.List(context.Background(), 5)
		require.NoError(t, err)
		assert.Len(t, res, 5)
	})

	t.Run("round-trip includes a created note", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		svc := newService(repo, &testutil.RecordingPublisher{})

		created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{Title: "Shopping", Content: "Milk, eggs"})
		require.NoError(t, err)

		res, err := svc.List(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, created.Id, res[0].Id)
		assert.Equal(t, "Shopping", res[0].Title)
		assert.Equal(t, "Milk, eggs", res[0].Content)
	})
}
