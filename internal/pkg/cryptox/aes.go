package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

const KeySize = 32

// AESGCM 敏感字段落库前加密，读出后解密
type AESGCM struct {
	key []byte
}

// NewAESGCM 密钥不足32字节时补零，超出部分截断
func NewAESGCM(key string) *AESGCM {
	k := make([]byte, KeySize)
	copy(k, key)
	return &AESGCM{key: k}
}

func (a *AESGCM) Encrypt(plaintext string) (string, error) {
	gcm, err := a.gcm()
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (a *AESGCM) Decrypt(encrypted string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", err
	}
	gcm, err := a.gcm()
	if err != nil {
		return "", err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return "", errors.New("ciphertext太短了")
	}
	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// DecryptOptional 空字符串表示未配置，直接返回
func (a *AESGCM) DecryptOptional(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}
	return a.Decrypt(encrypted)
}

func (a *AESGCM) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(a.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
