package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// AdminSubject is the token subject of the single author.
const AdminSubject = "admin"

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func ComparePassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// Gate guards the editor with the author's password and hands out
// session tokens once it matches.
type Gate struct {
	hash string
	jwt  *JWT
}

func NewGate(passwordHash string, jwtSvc *JWT) *Gate {
	return &Gate{hash: passwordHash, jwt: jwtSvc}
}

func (g *Gate) Login(password string) (string, error) {
	if password == "" || !ComparePassword(g.hash, password) {
		return "", ErrInvalidPassword
	}
	return g.jwt.Sign(AdminSubject)
}
