// Package mongo 提供 MongoDB 实现的衣柜/偏好/评分存储。
package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

const (
	closetCollection     = "closet_items"
	preferenceCollection = "preferences"
	outfitCollection     = "outfits"
)

// Store 基于 MongoDB 实现 core.ClosetStore、core.PreferenceStore 和 core.RatingStore。
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// ListItemsOwnedBy 返回某位用户的全部衣柜衣物。
func (s *Store) ListItemsOwnedBy(ctx context.Context, userID string) ([]core.ClothingItem, error) {
	cur, err := s.db.Collection(closetCollection).Find(ctx, bson.M{"ownerId": userID})
	if err != nil {
		return nil, core.NewDomainErrorWithCause(core.ModuleCloset, core.ErrorCodeUnavailable, "closet query failed", err)
	}
	defer cur.Close(ctx)

	var out []core.ClothingItem
	for cur.Next(ctx) {
		var doc clothingItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, core.NewDomainErrorWithCause(core.ModuleCloset, core.ErrorCodeInternalError, "closet decode failed", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, core.NewDomainErrorWithCause(core.ModuleCloset, core.ErrorCodeUnavailable, "closet cursor failed", err)
	}
	return out, nil
}

// GetPreferences 返回用户偏好；不存在时返回 (nil, nil)。
func (s *Store) GetPreferences(ctx context.Context, userID string) (*core.Preferences, error) {
	var doc preferenceDoc
	err := s.db.Collection(preferenceCollection).FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, core.NewDomainErrorWithCause(core.ModulePreference, core.ErrorCodeUnavailable, "preference query failed", err)
	}
	return doc.toDomain(), nil
}

// ListRatedOutfits 返回某位用户已评分的穿搭。
func (s *Store) ListRatedOutfits(ctx context.Context, userID string) ([]core.RatedOutfit, error) {
	filter := bson.M{"userId": userID, "userRating": bson.M{"$ne": nil}}
	return s.findRatedOutfits(ctx, filter, nil)
}

// ListAllRatedOutfits 返回跨用户评分池，按创建时间倒序、至多 limit 条。
func (s *Store) ListAllRatedOutfits(ctx context.Context, limit int) ([]core.RatedOutfit, error) {
	filter := bson.M{"userRating": bson.M{"$ne": nil}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}
	return s.findRatedOutfits(ctx, filter, opts)
}

func (s *Store) findRatedOutfits(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]core.RatedOutfit, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = s.db.Collection(outfitCollection).Find(ctx, filter, opts)
	} else {
		cur, err = s.db.Collection(outfitCollection).Find(ctx, filter)
	}
	if err != nil {
		return nil, core.NewDomainErrorWithCause(core.ModuleRating, core.ErrorCodeUnavailable, "outfit query failed", err)
	}
	defer cur.Close(ctx)

	var out []core.RatedOutfit
	for cur.Next(ctx) {
		var doc ratedOutfitDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, core.NewDomainErrorWithCause(core.ModuleRating, core.ErrorCodeInternalError, "outfit decode failed", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, core.NewDomainErrorWithCause(core.ModuleRating, core.ErrorCodeUnavailable, "outfit cursor failed", err)
	}
	return out, nil
}

var (
	_ core.ClosetStore     = (*Store)(nil)
	_ core.PreferenceStore = (*Store)(nil)
	_ core.RatingStore     = (*Store)(nil)
)
