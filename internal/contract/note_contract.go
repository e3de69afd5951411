package contract

// CreateNoteRequest requires a non-zero user_id and non-empty content.
// The user_id is not checked against existing users; orphaned notes are
// allowed.
type CreateNoteRequest struct {
	UserID  int    `json:"user_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateNoteRequest struct {
	UserID  *int    `json:"user_id"`
	Content *string `json:"content"`
}

type NoteResponse struct {
	ID        string `json:"id"`
	UserID    int    `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}
