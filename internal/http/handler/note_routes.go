package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notesapi/internal/contract"
	"notesapi/internal/utils/apierror"
)

type NoteService interface {
	CreateNote(req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	GetNotesByUser(rawId string) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetNote(noteId string) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(noteId string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(noteId string) apierror.ErrorResponse
}

type DefaultNoteRoute struct {
	NoteService NoteService
}

func NewNoteDefault(noteService NoteService) *DefaultNoteRoute {
	return &DefaultNoteRoute{NoteService: noteService}
}

func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	var req contract.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"message": "Note created successfully",
		"note":    note,
	}
	return c.JSON(http.StatusCreated, &resp)
}

func (n *DefaultNoteRoute) GetNotesByUser(c echo.Context) error {
	notes, apierr := n.NoteService.GetNotesByUser(c.Param("user_id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, notes)
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	note, apierr := n.NoteService.GetNote(c.Param("note_id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	var req contract.UpdateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.UpdateNote(c.Param("note_id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"message": "Note updated successfully",
		"note":    note,
	}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	if apierr := n.NoteService.DeleteNote(c.Param("note_id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "Note deleted successfully"}
	return c.JSON(http.StatusOK, &resp)
}
