package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesapi/internal/contract"
	"notesapi/internal/http/handler"
	"notesapi/internal/utils/apierror"
)

// -------- test fakes --------

type fakeNoteService struct {
	note  *contract.NoteResponse
	notes []*contract.NoteResponse
	err   apierror.ErrorResponse

	lastRawID  string
	lastCreate *contract.CreateNoteRequest
	lastUpdate *contract.UpdateNoteRequest
}

func (f *fakeNoteService) CreateNote(req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	f.lastCreate = req
	return f.note, f.err
}

func (f *fakeNoteService) GetNotesByUser(rawId string) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	f.lastRawID = rawId
	return f.notes, f.err
}

func (f *fakeNoteService) GetNote(noteId string) (*contract.NoteResponse, apierror.ErrorResponse) {
	f.lastRawID = noteId
	return f.note, f.err
}

func (f *fakeNoteService) UpdateNote(noteId string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	f.lastRawID = noteId
	f.lastUpdate = req
	return f.note, f.err
}

func (f *fakeNoteService) DeleteNote(noteId string) apierror.ErrorResponse {
	f.lastRawID = noteId
	return f.err
}

func sampleNote() *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:        "8d2f4b1a-8f2f-4c25-9a57-2f9f8a3b1c6d",
		UserID:    1,
		Content:   "hello",
		CreatedAt: "2023-11-14T22:13:20Z",
	}
}

// -------- tests --------

func TestCreateNoteHandlerCreated(t *testing.T) {
	svc := &fakeNoteService{note: sampleNote()}
	route := handler.NewNoteDefault(svc)

	c, rec := newContext(t, http.MethodPost, "/notes", `{"user_id":1,"content":"hello"}`)
	require.NoError(t, route.CreateNote(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Note created successfully", body["message"])
	note := body["note"].(map[string]any)
	assert.Equal(t, "hello", note["content"])
	assert.Equal(t, 1, svc.lastCreate.UserID)
}

func TestCreateNoteHandlerMissingFields(t *testing.T) {
	svc := &fakeNoteService{err: apierror.MissingFieldsError}
	route := handler.NewNoteDefault(svc)

	c, rec := newContext(t, http.MethodPost, "/notes", `{"user_id":0,"content":""}`)
	require.NoError(t, route.CreateNote(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, rec)["message"])
}

func TestGetNotesByUserHandler(t *testing.T) {
	svc := &fakeNoteService{notes: []*contract.NoteResponse{sampleNote()}}
	route := handler.NewNoteDefault(svc)

	c, rec := newContext(t, http.MethodGet, "/notes/user/1", "")
	c.SetParamNames("user_id")
	c.SetParamValues("1")
	require.NoError(t, route.GetNotesByUser(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", svc.lastRawID)
	var notes []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
}

func TestGetNoteHandlerPassesOpaqueID(t *testing.T) {
	svc := &fakeNoteService{note: sampleNote()}
	route := handler.NewNoteDefault(svc)

	c, rec := newContext(t, http.MethodGet, "/notes/some-opaque-id", "")
	c.SetParamNames("note_id")
	c.SetParamValues("some-opaque-id")
	require.NoError(t, route.GetNote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "some-opaque-id", svc.lastRawID)
}

func TestUpdateNoteHandler(t *testing.T) {
	svc := &fakeNoteService{note: sampleNote()}
	route := handler.NewNoteDefault(svc)

	c, rec := newContext(t, http.MethodPut, "/notes/a", `{"content":"edited"}`)
	c.SetParamNames("note_id")
	c.SetParamValues("a")
	require.NoError(t, route.UpdateNote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Note updated successfully", decodeBody(t, rec)["message"])
	require.NotNil(t, svc.lastUpdate.Content)
	assert.Equal(t, "edited", *svc.lastUpdate.Content)
	assert.Nil(t, svc.lastUpdate.UserID)
}

func TestDeleteNoteHandler(t *testing.T) {
	svc := &fakeNoteService{}
	route := handler.NewNoteDefault(svc)

	c, rec := newContext(t, http.MethodDelete, "/notes/a", "")
	c.SetParamNames("note_id")
	c.SetParamValues("a")
	require.NoError(t, route.DeleteNote(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Note deleted successfully", decodeBody(t, rec)["message"])
}

func TestDeleteNoteHandlerNotFound(t *testing.T) {
	svc := &fakeNoteService{err: apierror.NoteNotFoundError}
	route := handler.NewNoteDefault(svc)

	c, rec := newContext(t, http.MethodDelete, "/notes/missing", "")
	c.SetParamNames("note_id")
	c.SetParamValues("missing")
	require.NoError(t, route.DeleteNote(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Note not found", decodeBody(t, rec)["message"])
}
