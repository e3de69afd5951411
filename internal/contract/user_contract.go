package contract

// CreateUserRequest carries the required user fields. The `required` tags
// reject zero values, so age 0 and empty strings fail exactly like a
// missing field.
type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Age      int    `json:"age" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is a partial merge: only non-nil fields are applied,
// and none of them are validated.
type UpdateUserRequest struct {
	UserName *string `json:"user_name"`
	Age      *int    `json:"age"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UserResponse struct {
	UserID    int    `json:"user_id"`
	UserName  string `json:"user_name"`
	Age       int    `json:"age"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}
