package dto

import (
	"time"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/permissions"
)

// LoginRequest credenciais de entrada.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + dados do usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest criação de usuário (restrita a quem gerencia configurações).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse usuário sem credenciais; o hash nunca sai da aplicação.
type UserResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Role        string                  `json:"role"`
	Permissions permissions.Permissions `json:"permissions"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// UpdateUserRequest edição de dados gerais do usuário. Password vazio mantém
// a senha atual. A troca de Role aplica o preset do novo perfil por inteiro.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdatePermissionsRequest customização granular de um único flag.
type UpdatePermissionsRequest struct {
	Capability string `json:"capability"`
	Value      bool   `json:"value"`
}
