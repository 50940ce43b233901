package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/repository/store"
	"github.com/mvdberg/huisportaal/internal/service"
	"github.com/mvdberg/huisportaal/internal/testutil"
)

func TestContactService_AddAndList(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	contactService := service.NewContactService(store.NewContactRepository(testDB.DB))
	ctx := context.Background()

	owner, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)

	contact, err := contactService.Add(ctx, owner.ID, "Bob", "123")
	require.NoError(t, err)
	assert.NotZero(t, contact.ID)

	contacts, err := contactService.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Bob", contacts[0].Name)
	assert.Equal(t, "123", contacts[0].PhoneNumber)
}

func TestContactService_MutationsMapNoRowsToNotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	contactService := service.NewContactService(store.NewContactRepository(testDB.DB))
	ctx := context.Background()

	owner, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	stranger, _ := testutil.NewAccountBuilder().Build(t, testDB.DB)
	contact := testutil.NewContactBuilder(owner.ID).Build(t, testDB.DB)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "update own contact",
			run: func() error {
				return contactService.UpdatePhone(ctx, contact.ID, owner.ID, "456")
			},
		},
		{
			name: "update unknown id",
			run: func() error {
				return contactService.UpdatePhone(ctx, contact.ID+1000, owner.ID, "456")
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "update someone else's contact",
			run: func() error {
				return contactService.UpdateName(ctx, contact.ID, stranger.ID, "Mallory")
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "delete someone else's contact",
			run: func() error {
				return contactService.Delete(ctx, contact.ID, stranger.ID)
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "delete own contact",
			run: func() error {
				return contactService.Delete(ctx, contact.ID, owner.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
