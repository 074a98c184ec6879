// Package identity manages account handles and their vault-encrypted contact
// fields. Email and phone never touch storage in the clear; exact-match email
// lookup goes through the non-reversible lookup hash.
package identity

import (
	"context"
	"errors"
	"strings"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"
	"gocircle/internal/vault"
)

// Profile is an identity with its sensitive fields decrypted for the caller.
type Profile struct {
	IdentityID uint64 `json:"identity_id"`
	Handle     string `json:"handle"`
	Status     string `json:"status"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type Service interface {
	Create(ctx context.Context, handle, email, phone string) (*dbmysql.Identity, error)
	GetProfile(ctx context.Context, identityID uint64) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*dbmysql.Identity, error)
	Deactivate(ctx context.Context, identityID uint64) error
	Delete(ctx context.Context, identityID uint64) error
}

type identityService struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &identityService{repo: repo}
}

func (s *identityService) Create(ctx context.Context, handle, email, phone string) (*dbmysql.Identity, error) {
	if err := common.ValidateHandle(handle); err != nil {
		return nil, err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, err
	}

	exists, err := s.repo.CheckHandleExists(ctx, handle)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New("handle already exists")
	}

	id := &dbmysql.Identity{
		Handle: strings.TrimSpace(handle),
		Status: "active",
	}

	if email != "" {
		normalized := normalizeEmail(email)
		cipher, err := vault.Encrypt(ctx, []byte(normalized))
		if err != nil {
			return nil, err
		}
		id.EmailCipher = cipher
		id.EmailHash = vault.LookupHash([]byte(normalized))
	}
	if phone != "" {
		cipher, err := vault.Encrypt(ctx, []byte(phone))
		if err != nil {
			return nil, err
		}
		id.PhoneCipher = cipher
	}

	if err := s.repo.Create(ctx, id); err != nil {
		return nil, err
	}
	return id, nil
}

func (s *identityService) GetProfile(ctx context.Context, identityID uint64) (*Profile, error) {
	id, err := s.repo.GetByID(ctx, identityID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		IdentityID: id.IdentityID,
		Handle:     id.Handle,
		Status:     id.Status,
	}
	if len(id.EmailCipher) > 0 {
		email, err := vault.Decrypt(ctx, id.EmailCipher)
		if err != nil {
			return nil, err
		}
		profile.Email = string(email)
	}
	if len(id.PhoneCipher) > 0 {
		phone, err := vault.Decrypt(ctx, id.PhoneCipher)
		if err != nil {
			return nil, err
		}
		profile.Phone = string(phone)
	}
	return profile, nil
}

// FindByEmail locates an account via the lookup hash of the plaintext email.
// Ciphertexts are never compared by value.
func (s *identityService) FindByEmail(ctx context.Context, email string) (*dbmysql.Identity, error) {
	if email == "" {
		return nil, common.ErrNotFound
	}
	hash := vault.LookupHash([]byte(normalizeEmail(email)))
	return s.repo.GetByEmailHash(ctx, hash)
}

func (s *identityService) Deactivate(ctx context.Context, identityID uint64) error {
	id, err := s.repo.GetByID(ctx, identityID)
	if err != nil {
		return err
	}
	id.Status = "deactivated"
	return s.repo.Update(ctx, id)
}

func (s *identityService) Delete(ctx context.Context, identityID uint64) error {
	return s.repo.SoftDelete(ctx, identityID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
