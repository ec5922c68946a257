package store

import "golang.org/x/crypto/bcrypt"

// CredentialRepository keeps one bcrypt hash per user under the
// password_<userId> key layout. The hash never leaves this package; callers
// only get a boolean verdict.
type CredentialRepository struct {
	kv *KV
}

func NewCredentialRepository(kv *KV) *CredentialRepository {
	return &CredentialRepository{kv: kv}
}

func (repo *CredentialRepository) SetPassword(userID string, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	Write(repo.kv, passwordKey(userID), string(hash))
	return nil
}

func (repo *CredentialRepository) VerifyPassword(userID string, password string) bool {
	hash := Read(repo.kv, passwordKey(userID), "")
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
