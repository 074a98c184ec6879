package identity

import (
	"context"
	"testing"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"
	"gocircle/internal/vault"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func vaultCtx() context.Context {
	key := make([]byte, 32)
	for i := range key {
		key[i] = 0x42
	}
	return vault.WithKey(context.Background(), key)
}

func TestCreateEncryptsContactFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := vaultCtx()

	var stored *dbmysql.Identity
	repo.EXPECT().CheckHandleExists(ctx, "alice").Return(false, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, id *dbmysql.Identity) error {
			id.IdentityID = 1
			stored = id
			return nil
		})

	id, err := svc.Create(ctx, "alice", "Alice@Example.com", "+15550100")
	require.NoError(t, err)
	require.Equal(t, uint64(1), id.IdentityID)

	// Ciphertext only; plaintext must not appear in the stored row.
	require.NotContains(t, string(stored.EmailCipher), "alice@example.com")
	require.NotContains(t, string(stored.PhoneCipher), "+15550100")
	require.Equal(t, vault.LookupHash([]byte("alice@example.com")), stored.EmailHash)

	email, err := vault.Decrypt(ctx, stored.EmailCipher)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", string(email))
}

func TestCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := vaultCtx()

	tests := []struct {
		name        string
		handle      string
		email       string
		setup       func()
		errContains string
	}{
		{name: "bad handle", handle: "!", email: "a@b.com", setup: func() {}, errContains: "handle"},
		{name: "bad email", handle: "goodhandle", email: "nope", setup: func() {}, errContains: "email"},
		{
			name:   "duplicate handle",
			handle: "taken",
			email:  "a@b.com",
			setup: func() {
				repo.EXPECT().CheckHandleExists(ctx, "taken").Return(true, nil)
			},
			errContains: "exists",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			_, err := svc.Create(ctx, tc.handle, tc.email, "")
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestCreateWithoutVaultKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().CheckHandleExists(ctx, "alice").Return(false, nil)

	_, err := svc.Create(ctx, "alice", "alice@example.com", "")
	require.ErrorIs(t, err, common.ErrKeyUnavailable)
}

func TestGetProfileDecrypts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := vaultCtx()

	emailCipher, err := vault.Encrypt(ctx, []byte("bob@example.com"))
	require.NoError(t, err)

	repo.EXPECT().GetByID(ctx, uint64(2)).Return(&dbmysql.Identity{
		IdentityID:  2,
		Handle:      "bob",
		Status:      "active",
		EmailCipher: emailCipher,
	}, nil)

	profile, err := svc.GetProfile(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "bob", profile.Handle)
	require.Equal(t, "bob@example.com", profile.Email)
	require.Empty(t, profile.Phone)
}

func TestFindByEmailUsesLookupHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := vaultCtx()

	wantHash := vault.LookupHash([]byte("carol@example.com"))
	repo.EXPECT().GetByEmailHash(ctx, wantHash).Return(&dbmysql.Identity{IdentityID: 3, Handle: "carol"}, nil)

	id, err := svc.FindByEmail(ctx, "  Carol@Example.COM ")
	require.NoError(t, err)
	require.Equal(t, uint64(3), id.IdentityID)

	_, err = svc.FindByEmail(ctx, "")
	require.ErrorIs(t, err, common.ErrNotFound)
}
