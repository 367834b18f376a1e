package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/bistro/app/models"
)

func init() {
	Register("menu", SeedMenu)
}

// SeedMenu inserts a starter menu when the collection is empty. The _ids
// are fixed hex strings on purpose: the production collection was first
// loaded from a JSON dump with string ids, and the API has to keep
// handling that shape.
func SeedMenu(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection("menu")

	n, err := coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	items := []any{
		models.MenuItem{ID: "642c155b2c4774f05c36eeaa", Name: "Roast Duck Breast", Category: "salad",
			Recipe: "Roasted duck breast (served pink) with gratin potato and a griottine cherry sauce.", Price: 14.5},
		models.MenuItem{ID: "642c155b2c4774f05c36eeab", Name: "Tuna Niçoise", Category: "salad",
			Recipe: "Seared tuna, green beans, soft egg, olives and anchovy dressing.", Price: 12.5},
		models.MenuItem{ID: "642c155b2c4774f05c36eeac", Name: "Escalope de Veau", Category: "pizza",
			Recipe: "Thin veal escalope with wild mushroom cream and buttered tagliatelle.", Price: 18.0},
		models.MenuItem{ID: "642c155b2c4774f05c36eead", Name: "Chicken and Walnut Salad", Category: "salad",
			Recipe: "Poached chicken, pickled celery, walnuts and tarragon mayonnaise.", Price: 10.0},
		models.MenuItem{ID: "642c155b2c4774f05c36eeae", Name: "Fish Parmentier", Category: "pizza",
			Recipe: "Smoked haddock and salmon under a cheddar mash crust.", Price: 15.5},
		models.MenuItem{ID: "642c155b2c4774f05c36eeaf", Name: "Baked Rolled Fillet", Category: "dessert",
			Recipe: "Rolled plaice fillet baked with lemon butter and capers.", Price: 9.5},
		models.MenuItem{ID: "642c155b2c4774f05c36eeb0", Name: "Wild Mushroom Soup", Category: "soup",
			Recipe: "Cep and chestnut mushroom soup finished with truffle oil.", Price: 7.0},
		models.MenuItem{ID: "642c155b2c4774f05c36eeb1", Name: "Tarte Tatin", Category: "dessert",
			Recipe: "Caramelised apple tart with crème normande.", Price: 8.0},
	}

	_, err = coll.InsertMany(ctx, items)
	return err
}
