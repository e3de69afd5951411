package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"notesapi/internal/domain/entity"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

func (d *DefaultNoteRepository) FindAllByUserID(userId int) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.Where("user_id = ?", userId).Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// FindByID treats the id as an opaque string; any non-empty value is a
// legal equality filter.
func (d *DefaultNoteRepository) FindByID(id string) (*entity.Note, error) {
	var note entity.Note
	err := d.db.Where("id = ?", id).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Insert persists the note under a freshly generated opaque id.
func (d *DefaultNoteRepository) Insert(note *entity.Note) error {
	note.ID = uuid.NewString()
	return d.db.Create(note).Error
}

func (d *DefaultNoteRepository) Save(note *entity.Note) error {
	return d.db.Save(note).Error
}

func (d *DefaultNoteRepository) Delete(note *entity.Note) error {
	return d.db.Delete(note).Error
}
