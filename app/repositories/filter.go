package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDFilter builds the _id predicate for collections that hold a mix of
// legacy string ids (from the original JSON seed data) and real ObjectIDs
// (documents created through the API). A 24-char hex id could be either,
// so we match both shapes; anything else can only be a plain string.
func IDFilter(id string) bson.M {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return bson.M{"_id": id}
	}
	return bson.M{"$or": []bson.M{
		{"_id": id},
		{"_id": oid},
	}}
}

// IDFilterAny builds one predicate matching any of the given ids, each
// under either shape. Empty ids are skipped; ok is false when nothing
// usable remains, so a caller can refuse to run an unbounded query.
func IDFilterAny(ids []string) (bson.M, bool) {
	var ors []bson.M
	for _, id := range ids {
		if id == "" {
			continue
		}
		ors = append(ors, IDFilter(id))
	}
	if len(ors) == 0 {
		return nil, false
	}
	return bson.M{"$or": ors}, true
}
