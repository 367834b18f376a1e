package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/bistro/app/models"
)

func TestIDFilterHexMatchesBothShapes(t *testing.T) {
	const hex = "642c155b2c4774f05c36eeaa"

	filter := IDFilter(hex)
	ors, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "24-char hex must produce an $or filter")
	require.Len(t, ors, 2)

	assert.Equal(t, hex, ors[0]["_id"])

	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)
	assert.Equal(t, oid, ors[1]["_id"])
}

func TestIDFilterPlainString(t *testing.T) {
	for _, id := range []string{"legacy-id-7", "short", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		filter := IDFilter(id)
		assert.Equal(t, bson.M{"_id": id}, filter, "non-hex id %q must match as a plain string", id)
	}
}

func TestIDFilterAny(t *testing.T) {
	const hex = "642c155b2c4774f05c36eeaa"

	filter, ok := IDFilterAny([]string{hex, "legacy-id", ""})
	require.True(t, ok)
	ors, isOr := filter["$or"].([]bson.M)
	require.True(t, isOr)
	assert.Len(t, ors, 2, "empty ids must be dropped")
	assert.Equal(t, IDFilter(hex), ors[0])
	assert.Equal(t, bson.M{"_id": "legacy-id"}, ors[1])
}

func TestIDFilterAnyRefusesEmptySet(t *testing.T) {
	// An unbounded filter here would be a delete-all; it must never run.
	for _, ids := range [][]string{nil, {}, {"", ""}} {
		_, ok := IDFilterAny(ids)
		assert.False(t, ok)
	}
}

func TestMenuItemKey(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), MenuItemKey(models.MenuItem{ID: oid}))
	assert.Equal(t, "legacy-id", MenuItemKey(models.MenuItem{ID: "legacy-id"}))
}
