package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name  string
	Email string
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
