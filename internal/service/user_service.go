package service

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"notesapi/internal/contract"
	"notesapi/internal/domain/entity"
	"notesapi/internal/utils"
	"notesapi/internal/utils/apierror"
)

type UserRepository interface {
	FindAll() ([]*entity.User, error)
	FindByUserID(userId int) (*entity.User, error)
	Insert(user *entity.User) error
	Save(user *entity.User) error
	Delete(user *entity.User) error
}

type UserService struct {
	UserRepo UserRepository
	Validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Validate: validate,
	}
}

// CreateUser checks field presence and persists the user. The user_id is
// assigned by the repository from the sequence counter, exactly once, and
// persistence is never touched when validation fails.
func (u *UserService) CreateUser(req *contract.CreateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	if err := u.Validate.Struct(req); err != nil {
		return nil, apierror.MissingFieldsError
	}

	user := &entity.User{
		UserName:  req.UserName,
		Age:       req.Age,
		Email:     req.Email,
		Password:  req.Password,
		CreatedAt: utils.NowUTC(),
	}

	if err := u.UserRepo.Insert(user); err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.NewInternal("Error creating user", err)
	}
	return toUserResponse(user), nil
}

func (u *UserService) GetUsers() ([]*contract.UserResponse, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch users: %v", err)
		return nil, apierror.NewInternal("Error fetching users", err)
	}

	resp := make([]*contract.UserResponse, len(users))
	for i, user := range users {
		resp[i] = toUserResponse(user)
	}
	return resp, nil
}

func (u *UserService) GetUser(rawId string) (*contract.UserResponse, apierror.ErrorResponse) {
	userId, apierr := parseUserID(rawId)
	if apierr != nil {
		return nil, apierr
	}

	user, err := u.UserRepo.FindByUserID(userId)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", userId, err)
		return nil, apierror.NewInternal("Error fetching user", err)
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}
	return toUserResponse(user), nil
}

// UpdateUser applies a partial merge: only fields present in the payload
// are touched, and none of them are validated. An empty payload is a legal
// no-op that still re-saves the record.
//
// Unlike the targeted lookups, the id is not pre-validated here; a
// malformed one surfaces through the failure path of the update itself.
func (u *UserService) UpdateUser(rawId string, req *contract.UpdateUserRequest) (*contract.UserResponse, apierror.ErrorResponse) {
	userId, err := strconv.Atoi(rawId)
	if err != nil {
		return nil, apierror.NewInternal("Error updating user", err)
	}

	user, err := u.UserRepo.FindByUserID(userId)
	if err != nil {
		log.Errorf("failed to fetch user %d for update: %v", userId, err)
		return nil, apierror.NewInternal("Error updating user", err)
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}

	if req.UserName != nil {
		user.UserName = *req.UserName
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		user.Password = *req.Password
	}

	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to update user %d: %v", userId, err)
		return nil, apierror.NewInternal("Error updating user", err)
	}
	return toUserResponse(user), nil
}

func (u *UserService) DeleteUser(rawId string) apierror.ErrorResponse {
	userId, err := strconv.Atoi(rawId)
	if err != nil {
		return apierror.NewInternal("Error deleting user", err)
	}

	user, err := u.UserRepo.FindByUserID(userId)
	if err != nil {
		log.Errorf("failed to fetch user %d for deletion: %v", userId, err)
		return apierror.NewInternal("Error deleting user", err)
	}

	if user == nil {
		return apierror.UserNotFoundError
	}

	if err := u.UserRepo.Delete(user); err != nil {
		log.Errorf("failed to delete user %d: %v", userId, err)
		return apierror.NewInternal("Error deleting user", err)
	}
	return nil
}

// parseUserID resolves a textual user id from the request path. Negative
// values parse fine and proceed to the lookup.
func parseUserID(rawId string) (int, apierror.ErrorResponse) {
	if rawId == "" {
		return 0, apierror.UserIDRequiredError
	}

	userId, err := strconv.Atoi(rawId)
	if err != nil {
		return 0, apierror.UserIDNotNumberError
	}
	return userId, nil
}

func toUserResponse(user *entity.User) *contract.UserResponse {
	return &contract.UserResponse{
		UserID:    user.UserID,
		UserName:  user.UserName,
		Age:       user.Age,
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: utils.FormatEpoch(user.CreatedAt),
	}
}
