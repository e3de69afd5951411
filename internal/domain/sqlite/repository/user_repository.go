package repository

import (
	"errors"

	"gorm.io/gorm"

	"notesapi/internal/domain/entity"
)

// CounterRepository allocates user_id values for new users.
type CounterRepository interface {
	AllocateNext() (int, error)
}

type DefaultUserRepository struct {
	db       *gorm.DB
	counters CounterRepository
}

func NewUserRepository(db *gorm.DB, counters CounterRepository) *DefaultUserRepository {
	return &DefaultUserRepository{db: db, counters: counters}
}

func (u *DefaultUserRepository) FindAll() ([]*entity.User, error) {
	var users []*entity.User
	err := u.db.Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (u *DefaultUserRepository) FindByUserID(userId int) (*entity.User, error) {
	var user entity.User
	err := u.db.Where("user_id = ?", userId).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert assigns the next user_id from the counter and persists the record.
// The allocator runs exactly once per insert; a unique violation on email
// surfaces as a plain storage error.
func (u *DefaultUserRepository) Insert(user *entity.User) error {
	seq, err := u.counters.AllocateNext()
	if err != nil {
		return err
	}

	user.UserID = seq
	return u.db.Create(user).Error
}

func (u *DefaultUserRepository) Save(user *entity.User) error {
	return u.db.Save(user).Error
}

func (u *DefaultUserRepository) Delete(user *entity.User) error {
	return u.db.Delete(user).Error
}
