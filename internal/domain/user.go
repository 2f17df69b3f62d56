package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é o usuário de acesso ao dashboard.
// Password chega em texto puro no dataset e é gravado como hash bcrypt.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Claims são as informações carregadas no token de acesso às rotas de seed
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
