package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	signInfo    = "webclient cookie signing v1"
	encryptInfo = "webclient cookie encryption v1"
)

// keySet holds the keys derived from one configured secret.
type keySet struct {
	sign []byte
	aead cipher.AEAD
}

func deriveKeys(secret string) (keySet, error) {
	sign, err := derive(secret, signInfo)
	if err != nil {
		return keySet{}, err
	}
	enc, err := derive(secret, encryptInfo)
	if err != nil {
		return keySet{}, err
	}
	block, err := aes.NewCipher(enc)
	if err != nil {
		return keySet{}, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return keySet{}, err
	}
	return keySet{sign: sign, aead: aead}, nil
}

func derive(secret, info string) ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, err
	}
	return key, nil
}
