package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
// Implementaciones: jwtauth (HS256 local) y remote (servicio de identidad).
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
