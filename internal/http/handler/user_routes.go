package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notesapi/internal/contract"
	"notesapi/internal/utils/apierror"
)

type UserService interface {
	CreateUser(req *contract.CreateUserRequest) (*contract.UserResponse, apierror.ErrorResponse)
	GetUsers() ([]*contract.UserResponse, apierror.ErrorResponse)
	GetUser(rawId string) (*contract.UserResponse, apierror.ErrorResponse)
	UpdateUser(rawId string, req *contract.UpdateUserRequest) (*contract.UserResponse, apierror.ErrorResponse)
	DeleteUser(rawId string) apierror.ErrorResponse
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserDefault(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (u *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req contract.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := u.UserService.CreateUser(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"message": "User created successfully",
		"user":    user,
	}
	return c.JSON(http.StatusCreated, &resp)
}

func (u *DefaultUserRoute) GetUsers(c echo.Context) error {
	users, apierr := u.UserService.GetUsers()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, users)
}

func (u *DefaultUserRoute) GetUser(c echo.Context) error {
	user, apierr := u.UserService.GetUser(c.Param("user_id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}

func (u *DefaultUserRoute) UpdateUser(c echo.Context) error {
	var req contract.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := u.UserService.UpdateUser(c.Param("user_id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{
		"message": "User updated successfully",
		"user":    user,
	}
	return c.JSON(http.StatusOK, &resp)
}

func (u *DefaultUserRoute) DeleteUser(c echo.Context) error {
	if apierr := u.UserService.DeleteUser(c.Param("user_id")); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"message": "User deleted successfully"}
	return c.JSON(http.StatusOK, &resp)
}
