package repositories

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/prudhvinik1/accounts/internal/models"
)

// accountDocument is the accounts collection record. deletedAt is always
// written, as null for live accounts, so the partial unique index can match it.
type accountDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Username  string        `bson:"username"`
	Email     string        `bson:"email"`
	Password  string        `bson:"password"`
	Provider  string        `bson:"provider"`
	CreatedAt *time.Time    `bson:"createdAt,omitempty"`
	UpdatedAt *time.Time    `bson:"updatedAt,omitempty"`
	DeletedAt *time.Time    `bson:"deletedAt"`
}

func toAccountDocument(account models.Account) accountDocument {
	doc := accountDocument{
		Username:  account.Username,
		Email:     account.Email,
		Password:  account.PasswordHash,
		Provider:  string(account.Provider),
		DeletedAt: account.DeletedAt,
	}
	if account.ID != "" {
		// A non-hex id cannot become an ObjectID; leave it for the backend.
		if oid, err := bson.ObjectIDFromHex(account.ID); err == nil {
			doc.ID = oid
		}
	}
	if !account.CreatedAt.IsZero() {
		createdAt := account.CreatedAt
		doc.CreatedAt = &createdAt
	}
	if !account.UpdatedAt.IsZero() {
		updatedAt := account.UpdatedAt
		doc.UpdatedAt = &updatedAt
	}
	return doc
}

func accountFromDocument(doc accountDocument) *models.Account {
	account := &models.Account{
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		Provider:     models.Provider(doc.Provider),
		DeletedAt:    doc.DeletedAt,
	}
	if !doc.ID.IsZero() {
		account.ID = doc.ID.Hex()
	}
	if doc.CreatedAt != nil {
		account.CreatedAt = *doc.CreatedAt
	}
	if doc.UpdatedAt != nil {
		account.UpdatedAt = *doc.UpdatedAt
	}
	return account
}
