package mongodb

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"verniti/internal/domain"
)

const (
	hotelsCollection  = "hotels"
	reviewsCollection = "reviews"
)

type HotelRepo struct{ c *mongo.Collection }

func NewHotelRepo(db *mongo.Database) *HotelRepo {
	return &HotelRepo{c: db.Collection(hotelsCollection)}
}

func (r *HotelRepo) Find(ctx context.Context, f domain.HotelFilter) ([]domain.Document, error) {
	filter := bson.M{}
	if f.City != nil {
		filter["city"] = substring(*f.City)
	}
	if f.Name != nil {
		filter["name"] = substring(*f.Name)
	}
	cur, err := r.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return drain(ctx, cur)
}

func (r *HotelRepo) FindOne(ctx context.Context, id domain.ID) (domain.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	if err := r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDocument(raw), nil
}

func (r *HotelRepo) InsertOne(ctx context.Context, doc domain.Document) (domain.ID, error) {
	res, err := r.c.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store returned a non-ObjectID identifier")
	}
	return domain.ID(oid.Hex()), nil
}

func (r *HotelRepo) UpdateOne(ctx context.Context, id domain.ID, patch domain.Document) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(patch)})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *HotelRepo) DeleteOne(ctx context.Context, id domain.ID) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

type ReviewRepo struct{ c *mongo.Collection }

func NewReviewRepo(db *mongo.Database) *ReviewRepo {
	return &ReviewRepo{c: db.Collection(reviewsCollection)}
}

func (r *ReviewRepo) FindByHotel(ctx context.Context, hotelID domain.ID) ([]domain.Document, error) {
	cur, err := r.c.Find(ctx, bson.M{"hotel_id": hotelID.String()})
	if err != nil {
		return nil, err
	}
	return drain(ctx, cur)
}

func (r *ReviewRepo) FindOne(ctx context.Context, id, hotelID domain.ID) (domain.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	err = r.c.FindOne(ctx, bson.M{"_id": oid, "hotel_id": hotelID.String()}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDocument(raw), nil
}

func (r *ReviewRepo) InsertOne(ctx context.Context, doc domain.Document) (domain.ID, error) {
	res, err := r.c.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store returned a non-ObjectID identifier")
	}
	return domain.ID(oid.Hex()), nil
}

func (r *ReviewRepo) UpdateOne(ctx context.Context, id, hotelID domain.ID, patch domain.Document) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}
	res, err := r.c.UpdateOne(ctx,
		bson.M{"_id": oid, "hotel_id": hotelID.String()},
		bson.M{"$set": bson.M(patch)})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *ReviewRepo) DeleteOne(ctx context.Context, id, hotelID domain.ID) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}
	res, err := r.c.DeleteOne(ctx, bson.M{"_id": oid, "hotel_id": hotelID.String()})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *ReviewRepo) DeleteByHotel(ctx context.Context, hotelID domain.ID) (int64, error) {
	res, err := r.c.DeleteMany(ctx, bson.M{"hotel_id": hotelID.String()})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// objectID converts a domain id to the driver's native form. Ids are
// validated at the edge, so a failure here means a caller skipped ParseID.
func objectID(id domain.ID) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id.String())
}

// substring builds a case-insensitive substring match.
func substring(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// toDocument rewrites the driver's ObjectID _id to a domain.ID so nothing
// above this package sees driver types.
func toDocument(raw bson.M) domain.Document {
	d := domain.Document(raw)
	if oid, ok := raw["_id"].(primitive.ObjectID); ok {
		d[domain.StoreIDKey] = domain.ID(oid.Hex())
	}
	return d
}

func drain(ctx context.Context, cur *mongo.Cursor) ([]domain.Document, error) {
	defer cur.Close(ctx)
	var out []domain.Document
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		out = append(out, toDocument(raw))
	}
	return out, cur.Err()
}
