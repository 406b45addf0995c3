package controller_test

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"notes-app-be/internal/controller"
	"notes-app-be/internal/entity"
	"notes-app-be/internal/pkg/serverutils"
	"notes-app-be/internal/service"
	"notes-app-be/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageApp(repo *testutil.FakeNoteRepository, pageLimit int) *fiber.App {
	svc := service.NewNoteService(
		&testutil.FakeRepositoryFactory{Repo: repo},
		&testutil.RecordingPublisher{},
		testutil.NopLogger{},
	)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	controller.NewPageController(svc, pageLimit).RegisterRoutes(app)
	return app
}

func TestIndexPage(t *testing.T) {
	t.Run("seeds at most the page limit, newest first", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		base := time.Now().Add(-time.Hour)
		for i := 0; i < 7; i++ {
			ts := base.Add(time.Duration(i) * time.Minute)
			repo.Put(entity.Note{
				Id:        uuid.New(),
				Title:     fmt.Sprintf("note-%d", i),
				Content:   "content",
				CreatedAt: ts,
				UpdatedAt: ts,
			})
		}

		app := newPageApp(repo, 5)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		html := string(body)

		assert.Contains(t, html, "__INITIAL_NOTES__")
		// The five newest are in the seed, the two oldest are not.
		for i := 2; i < 7; i++ {
			assert.Contains(t, html, fmt.Sprintf("note-%d", i))
		}
		assert.NotContains(t, html, "note-0")
		assert.NotContains(t, html, "note-1")
	})

	t.Run("listing failure propagates as 500", func(t *testing.T) {
		repo := testutil.NewFakeNoteRepository()
		repo.FailWith = assert.AnError

		app := newPageApp(repo, 5)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
