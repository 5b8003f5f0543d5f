package user

type GetUserInput struct {
	UserID string
}

type CreateUserInput struct {
	UserID string
}

type TouchUserInput struct {
	UserID string
}

type CountUsersInput struct {
}

type CountUsersOutput struct {
	Count int64
}
