package repository

import (
	"context"
	"log/slog"
	"time"

	"qrkeep/internal/domain/qrcode"
	"qrkeep/internal/infra"
	"qrkeep/internal/pkg/config"
	"qrkeep/internal/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// qrCodeDocument is the stored shape of a record. Field names mirror the wire
// format so documents written by earlier deployments stay readable.
type qrCodeDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	CodeID    string             `bson:"qrCodeId"`
	Data      string             `bson:"data"`
	Image     string             `bson:"qrCodeImage"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func toDocument(rec *qrcode.QRCode) qrCodeDocument {
	return qrCodeDocument{
		UserID:    rec.UserID().String(),
		CodeID:    rec.CodeID(),
		Data:      rec.Payload().String(),
		Image:     rec.Image(),
		CreatedAt: rec.CreatedAt(),
	}
}

func toEntity(doc qrCodeDocument) *qrcode.QRCode {
	return qrcode.Reconstruct(doc.UserID, doc.CodeID, doc.Data, doc.Image, doc.CreatedAt)
}

type MongoQRCodeRepository struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

func NewMongoQRCodeRepository(client *mongo.Client, cfg config.StoreConfig, logger *slog.Logger) (usecase.QRCodeRepository, error) {
	coll := client.Database(cfg.Database).Collection(cfg.Collection)

	// The unique index is what turns a racing double-insert into a
	// DUPLICATE_KEY error instead of two records with one code id.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "qrCodeId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
		},
	})
	if err != nil {
		return nil, infra.WrapRepoErr(logger, infra.KindDBFailure, "failed to ensure qr code indexes", err)
	}

	return &MongoQRCodeRepository{coll: coll, logger: logger}, nil
}

func (r *MongoQRCodeRepository) FindByUser(ctx context.Context, userID string) ([]*qrcode.QRCode, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find qr codes by user", err)
	}

	var docs []qrCodeDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode qr code documents", err)
	}

	recs := make([]*qrcode.QRCode, len(docs))
	for i, doc := range docs {
		recs[i] = toEntity(doc)
	}
	return recs, nil
}

func (r *MongoQRCodeRepository) FindByCodeID(ctx context.Context, codeID string) (*qrcode.QRCode, error) {
	var doc qrCodeDocument
	err := r.coll.FindOne(ctx, bson.M{"qrCodeId": codeID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "qr code not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find qr code by code id", err)
	}
	return toEntity(doc), nil
}

func (r *MongoQRCodeRepository) Insert(ctx context.Context, rec *qrcode.QRCode) error {
	_, err := r.coll.InsertOne(ctx, toDocument(rec))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return infra.WrapRepoErr(r.logger, infra.KindDuplicateKey, "qr code id already exists", err)
		}
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert qr code", err)
	}
	return nil
}

func (r *MongoQRCodeRepository) Update(ctx context.Context, rec *qrcode.QRCode) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"qrCodeId": rec.CodeID()},
		bson.M{"$set": bson.M{
			"data":        rec.Payload().String(),
			"qrCodeImage": rec.Image(),
		}},
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to update qr code", err)
	}
	if res.MatchedCount == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "qr code not found for update", mongo.ErrNoDocuments)
	}
	return nil
}

func (r *MongoQRCodeRepository) Delete(ctx context.Context, codeID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"qrCodeId": codeID})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete qr code", err)
	}
	return res.DeletedCount > 0, nil
}
