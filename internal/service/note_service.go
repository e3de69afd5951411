package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"notesapi/internal/contract"
	"notesapi/internal/domain/entity"
	"notesapi/internal/utils"
	"notesapi/internal/utils/apierror"
)

type NoteRepository interface {
	FindAllByUserID(userId int) ([]*entity.Note, error)
	FindByID(id string) (*entity.Note, error)
	Insert(note *entity.Note) error
	Save(note *entity.Note) error
	Delete(note *entity.Note) error
}

type NoteService struct {
	NoteRepo NoteRepository
	Validate *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, validate *validator.Validate) *NoteService {
	return &NoteService{
		NoteRepo: noteRepo,
		Validate: validate,
	}
}

// CreateNote checks field presence and persists the note under a
// store-generated id. The user_id is not checked against existing users.
func (n *NoteService) CreateNote(req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	if err := n.Validate.Struct(req); err != nil {
		return nil, apierror.MissingFieldsError
	}

	note := &entity.Note{
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: utils.NowUTC(),
	}

	if err := n.NoteRepo.Insert(note); err != nil {
		log.Errorf("failed to create note: %v", err)
		return nil, apierror.NewInternal("Error creating note", err)
	}
	return toNoteResponse(note), nil
}

func (n *NoteService) GetNotesByUser(rawId string) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	userId, apierr := parseUserID(rawId)
	if apierr != nil {
		return nil, apierr
	}

	notes, err := n.NoteRepo.FindAllByUserID(userId)
	if err != nil {
		log.Errorf("failed to fetch notes for user %d: %v", userId, err)
		return nil, apierror.NewInternal("Error fetching notes", err)
	}

	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp, nil
}

// GetNote accepts any non-empty opaque id; there is no numeric constraint
// on note identifiers.
func (n *NoteService) GetNote(noteId string) (*contract.NoteResponse, apierror.ErrorResponse) {
	if noteId == "" {
		return nil, apierror.NoteIDRequiredError
	}

	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note %s: %v", noteId, err)
		return nil, apierror.NewInternal("Error fetching note", err)
	}

	if note == nil {
		return nil, apierror.NoteNotFoundError
	}
	return toNoteResponse(note), nil
}

// UpdateNote applies a partial merge with no field validation; an empty
// payload is a legal no-op that still re-saves the record.
func (n *NoteService) UpdateNote(noteId string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note %s for update: %v", noteId, err)
		return nil, apierror.NewInternal("Error updating note", err)
	}

	if note == nil {
		return nil, apierror.NoteNotFoundError
	}

	if req.UserID != nil {
		note.UserID = *req.UserID
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	if err := n.NoteRepo.Save(note); err != nil {
		log.Errorf("failed to update note %s: %v", noteId, err)
		return nil, apierror.NewInternal("Error updating note", err)
	}
	return toNoteResponse(note), nil
}

func (n *NoteService) DeleteNote(noteId string) apierror.ErrorResponse {
	if noteId == "" {
		return apierror.NoteIDRequiredError
	}

	note, err := n.NoteRepo.FindByID(noteId)
	if err != nil {
		log.Errorf("failed to fetch note %s for deletion: %v", noteId, err)
		return apierror.NewInternal("Error deleting note", err)
	}

	if note == nil {
		return apierror.NoteNotFoundError
	}

	if err := n.NoteRepo.Delete(note); err != nil {
		log.Errorf("failed to delete note %s: %v", noteId, err)
		return apierror.NewInternal("Error deleting note", err)
	}
	return nil
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:        note.ID,
		UserID:    note.UserID,
		Content:   note.Content,
		CreatedAt: utils.FormatEpoch(note.CreatedAt),
	}
}
