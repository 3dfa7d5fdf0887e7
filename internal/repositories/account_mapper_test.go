package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/prudhvinik1/accounts/internal/models"
)

func TestAccountRow_RoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 1, 23, 10, 0, 0, 0, time.UTC)
	deletedAt := createdAt.Add(time.Hour)

	accounts := []models.Account{
		{
			ID:           "42",
			Username:     "John doe",
			Email:        "johndoe@mail.com",
			PasswordHash: "$2a$10$hash",
			Provider:     models.ProviderEmail,
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt,
		},
		{
			ID:           "7",
			Username:     "Jane",
			Email:        "jane@mail.com",
			PasswordHash: "$2a$10$other",
			Provider:     models.ProviderGoogle,
			CreatedAt:    createdAt,
			UpdatedAt:    createdAt.Add(time.Minute),
			DeletedAt:    &deletedAt,
		},
	}

	for _, account := range accounts {
		got := accountFromRow(toAccountRow(account))
		assert.Equal(t, account, *got)
	}
}

func TestAccountRow_PartialAccount(t *testing.T) {
	row := toAccountRow(models.Account{
		Username:     "John doe",
		Email:        "johndoe@mail.com",
		PasswordHash: "hash",
	})

	assert.Zero(t, row.ID)
	assert.True(t, row.CreatedAt.IsZero())
	assert.Nil(t, row.DeletedAt)
	assert.Equal(t, "hash", row.Password)

	assert.Empty(t, accountFromRow(row).ID)
}

func TestAccountRow_MalformedIDIsDropped(t *testing.T) {
	for _, id := range []string{"abc", "-1", "0", "65f1c0ffee0ddba11c0ffee0"} {
		assert.Zero(t, toAccountRow(models.Account{ID: id}).ID, "id %q", id)
	}
}

func TestAccountDocument_RoundTrip(t *testing.T) {
	createdAt := time.Date(2026, 1, 23, 10, 0, 0, 0, time.UTC)
	deletedAt := createdAt.Add(time.Hour)

	account := models.Account{
		ID:           bson.NewObjectID().Hex(),
		Username:     "John doe",
		Email:        "johndoe@mail.com",
		PasswordHash: "$2a$10$hash",
		Provider:     models.ProviderFacebook,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
		DeletedAt:    &deletedAt,
	}

	got := accountFromDocument(toAccountDocument(account))

	assert.Equal(t, account, *got)
}

func TestAccountDocument_PartialAccount(t *testing.T) {
	doc := toAccountDocument(models.Account{
		Username:     "John doe",
		Email:        "johndoe@mail.com",
		PasswordHash: "hash",
		Provider:     models.ProviderEmail,
	})

	assert.True(t, doc.ID.IsZero())
	assert.Nil(t, doc.CreatedAt)
	assert.Nil(t, doc.UpdatedAt)
	assert.Nil(t, doc.DeletedAt)

	// omitempty drops the unassigned fields; deletedAt stays as null
	raw, err := bson.Marshal(doc)
	assert.NoError(t, err)
	var fields bson.M
	assert.NoError(t, bson.Unmarshal(raw, &fields))
	assert.NotContains(t, fields, "_id")
	assert.NotContains(t, fields, "createdAt")
	assert.Contains(t, fields, "deletedAt")
	assert.Nil(t, fields["deletedAt"])
}

func TestAccountDocument_IDPropagation(t *testing.T) {
	oid := bson.NewObjectID()

	assert.Equal(t, oid, toAccountDocument(models.Account{ID: oid.Hex()}).ID)
	assert.True(t, toAccountDocument(models.Account{ID: "42"}).ID.IsZero())
}
