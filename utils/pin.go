package utils

import (
	"github.com/matthewhartstonge/argon2"
)

func HashPIN(pin string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(pin))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPIN(encodedHash, pin string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(pin), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}
