package auth

import "go.uber.org/fx"

// Module provides the credential hasher via fx.
var Module = fx.Provide(newPasswordHasher)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}
