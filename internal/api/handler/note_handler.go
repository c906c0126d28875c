package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spellnotes/notes-api/internal/api/metrics"
	"github.com/spellnotes/notes-api/internal/core/domain"
	"github.com/spellnotes/notes-api/internal/core/ports"
)

type NoteHandler struct {
	noteService ports.NoteService
}

func NewNoteHandler(noteService ports.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// Create persists a new note for the authenticated user after the spelling gate.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note content"
// @Success      201   {object}  noteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.noteService.CreateNote(c.Request().Context(), user, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSpellingErrors):
			metrics.NotesCreatedTotal.WithLabelValues("spelling_rejected").Inc()
		case errors.Is(err, domain.ErrSpellerUnavailable):
			metrics.NotesCreatedTotal.WithLabelValues("speller_unavailable").Inc()
		default:
			metrics.NotesCreatedTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.NotesCreatedTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusCreated, toNoteResponse(note))
}

// List returns the authenticated user's notes.
//
// @Summary      List notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   noteResponse
// @Failure      401  {object}  errorResponse
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	notes, err := h.noteService.ListNotes(c.Request().Context(), user)
	if err != nil {
		return err
	}

	resp := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, toNoteResponse(n))
	}
	return c.JSON(http.StatusOK, resp)
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:      n.ID,
		UserID:  n.UserID,
		Content: n.Content,
	}
}
