package controller

import (
	"bytes"
	"encoding/json"
	"html/template"

	"notes-app-be/internal/service"
	"notes-app-be/web"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

type pageController struct {
	noteService service.INoteService
	pageLimit   int
	templates   *template.Template
}

func NewPageController(noteService service.INoteService, pageLimit int) IPageController {
	tmpl := template.Must(template.ParseFS(web.Templates, "templates/*.html"))
	return &pageController{
		noteService: noteService,
		pageLimit:   pageLimit,
		templates:   tmpl,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
}

// Index renders the notes page with the newest notes as the client panel's
// initial state. A listing failure propagates to the error handler; this layer
// does not recover.
func (c *pageController) Index(ctx *fiber.Ctx) error {
	notes, err := c.noteService.List(ctx.Context(), c.pageLimit)
	if err != nil {
		return err
	}

	seed, err := json.Marshal(notes)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	data := map[string]any{
		"Title":        "Notes App",
		"InitialNotes": template.JS(seed),
	}
	if err := c.templates.ExecuteTemplate(&buf, "index.html", data); err != nil {
		return err
	}

	ctx.Type("html", "utf-8")
	return ctx.Send(buf.Bytes())
}
