package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/prudhvinik1/accounts/internal/database"
	"github.com/prudhvinik1/accounts/internal/models"
)

const mongoDuplicateKey = 11000

type accountCollection interface {
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
}

type MongoAccountRepository struct {
	coll         accountCollection
	writeTimeout time.Duration
	now          func() time.Time
}

func NewMongoAccountRepository(db *mongo.Database, writeTimeout time.Duration) *MongoAccountRepository {
	return newMongoAccountRepository(db.Collection(database.AccountsCollection), writeTimeout, nil)
}

func newMongoAccountRepository(coll accountCollection, writeTimeout time.Duration, now func() time.Time) *MongoAccountRepository {
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &MongoAccountRepository{coll: coll, writeTimeout: writeTimeout, now: now}
}

func (r *MongoAccountRepository) Create(ctx context.Context, account models.Account) (*models.Account, error) {
	const op = "mongo.accounts.Create"
	if err := ctx.Err(); err != nil {
		return nil, storageErr(op, err)
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.writeTimeout)
	defer cancel()

	doc := toAccountDocument(account)
	if doc.Provider == "" {
		doc.Provider = string(models.ProviderEmail)
	}
	// BSON dates keep millisecond precision.
	now := r.now().UTC().Truncate(time.Millisecond)
	if doc.CreatedAt == nil {
		doc.CreatedAt = &now
	}
	if doc.UpdatedAt == nil {
		doc.UpdatedAt = &now
	}

	result, err := r.coll.InsertOne(writeCtx, doc)
	if err != nil {
		if isDuplicateEmailKey(err) {
			return nil, storageErr(op, ErrDuplicateEmail)
		}
		return nil, storageErr(op, err)
	}

	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, storageErr(op, fmt.Errorf("unexpected inserted id type %T", result.InsertedID))
	}
	doc.ID = oid

	return accountFromDocument(doc), nil
}

func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if email == "" {
		return nil, nil
	}
	filter := bson.D{{Key: "email", Value: email}, {Key: "deletedAt", Value: nil}}
	return r.findOne(ctx, "mongo.accounts.FindByEmail", filter)
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	filter := bson.D{{Key: "_id", Value: oid}, {Key: "deletedAt", Value: nil}}
	return r.findOne(ctx, "mongo.accounts.FindByID", filter)
}

func (r *MongoAccountRepository) findOne(ctx context.Context, op string, filter bson.D) (*models.Account, error) {
	var doc accountDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(op, err)
	}
	return accountFromDocument(doc), nil
}

// isDuplicateEmailKey reports whether a write failed on the email index.
// Servers attach the offending keyPattern to each duplicate key write error;
// older ones only name the index in the message.
func isDuplicateEmailKey(err error) bool {
	var writeException mongo.WriteException
	if !errors.As(err, &writeException) {
		return false
	}
	for _, writeErr := range writeException.WriteErrors {
		if writeErr.Code != mongoDuplicateKey {
			continue
		}
		if keyPattern, ok := writeErr.Raw.Lookup("keyPattern").DocumentOK(); ok {
			if _, lookupErr := keyPattern.LookupErr("email"); lookupErr == nil {
				return true
			}
			continue
		}
		if strings.Contains(writeErr.Message, "index: "+database.AccountsEmailIndex+" ") {
			return true
		}
	}
	return false
}
