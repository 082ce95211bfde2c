package user

import "gorm.io/gorm"

type UserContainer struct {
	Handler *Handler
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB, bcryptCost int, secureCookies bool) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, bcryptCost)
	handler := NewHandler(service, secureCookies)

	return &UserContainer{
		Handler: handler,
		Repo:    repo,
	}
}
