package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/menuhub/menu-server/internal/core/domain"
)

const (
	restaurantCollection = "restaurants"

	restaurantEmailIndex    = "uniq_email"
	restaurantUsernameIndex = "uniq_username"
)

type RestaurantRepository struct {
	coll *mongo.Collection
}

func NewRestaurantRepository(db *mongo.Database) *RestaurantRepository {
	return &RestaurantRepository{coll: db.Collection(restaurantCollection)}
}

type mongoSize struct {
	Name  string  `bson:"name"`
	Price float64 `bson:"price"`
}

type mongoMenuItem struct {
	ID          string      `bson:"id"`
	Name        string      `bson:"name"`
	Description string      `bson:"description,omitempty"`
	Sizes       []mongoSize `bson:"sizes"`
	Category    string      `bson:"category"`
	Image       string      `bson:"image,omitempty"`
}

type mongoRestaurant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Name         string             `bson:"name"`
	Location     string             `bson:"location"`
	Status       string             `bson:"status"`
	Menu         []mongoMenuItem    `bson:"menu"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toMongoMenu(items []domain.MenuItem) []mongoMenuItem {
	menu := make([]mongoMenuItem, 0, len(items))
	for _, item := range items {
		sizes := make([]mongoSize, 0, len(item.Sizes))
		for _, s := range item.Sizes {
			sizes = append(sizes, mongoSize{Name: s.Name, Price: s.Price})
		}
		menu = append(menu, mongoMenuItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Sizes:       sizes,
			Category:    item.Category,
			Image:       item.Image,
		})
	}
	return menu
}

func toMongoRestaurant(r *domain.Restaurant) mongoRestaurant {
	return mongoRestaurant{
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		Location:     r.Location,
		Status:       string(r.Status),
		Menu:         toMongoMenu(r.Menu),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m *mongoRestaurant) toDomain() *domain.Restaurant {
	menu := make([]domain.MenuItem, 0, len(m.Menu))
	for _, item := range m.Menu {
		sizes := make([]domain.Size, 0, len(item.Sizes))
		for _, s := range item.Sizes {
			sizes = append(sizes, domain.Size{Name: s.Name, Price: s.Price})
		}
		menu = append(menu, domain.MenuItem{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Sizes:       sizes,
			Category:    item.Category,
			Image:       item.Image,
		})
	}
	return &domain.Restaurant{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Location:     m.Location,
		Status:       domain.RestaurantStatus(m.Status),
		Menu:         menu,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *domain.Restaurant) (*domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoRestaurant(rest)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		switch {
		case duplicateOn(err, restaurantEmailIndex):
			return nil, domain.ErrRestaurantExists
		case duplicateOn(err, restaurantUsernameIndex):
			return nil, domain.ErrUsernameTaken
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrRestaurantExists
		}
		return nil, fmt.Errorf("insert restaurant: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *RestaurantRepository) FindByEmail(ctx context.Context, email string) (*domain.Restaurant, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *RestaurantRepository) FindByUsername(ctx context.Context, username string) (*domain.Restaurant, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *RestaurantRepository) findOne(ctx context.Context, filter bson.M) (*domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoRestaurant
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if notFound(err) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("find restaurant: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]*domain.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoRestaurant
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode restaurants: %w", err)
	}

	out := make([]*domain.Restaurant, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// SaveMenu writes rest's menu and updated_at. Status, credentials and
// username are left as stored.
func (r *RestaurantRepository) SaveMenu(ctx context.Context, rest *domain.Restaurant) error {
	oid, ok := objectID(rest.ID)
	if !ok {
		return domain.ErrRestaurantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"menu":       toMongoMenu(rest.Menu),
		"updated_at": rest.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update restaurant menu: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *RestaurantRepository) SetStatus(ctx context.Context, id string, status domain.RestaurantStatus) (domain.RestaurantStatus, error) {
	oid, ok := objectID(id)
	if !ok {
		return "", domain.ErrRestaurantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.Before).
		SetProjection(bson.M{"status": 1})

	var prev struct {
		Status string `bson:"status"`
	}
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&prev); err != nil {
		if notFound(err) {
			return "", domain.ErrRestaurantNotFound
		}
		return "", fmt.Errorf("set restaurant status: %w", err)
	}
	return domain.RestaurantStatus(prev.Status), nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrRestaurantNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

// MenuCategories returns distinct category slugs in order of first appearance
// on the menu.
func (r *RestaurantRepository) MenuCategories(ctx context.Context, username string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"username": username}}},
		{{Key: "$unwind", Value: bson.M{"path": "$menu", "includeArrayIndex": "pos"}}},
		{{Key: "$group", Value: bson.M{"_id": "$menu.category", "pos": bson.M{"$min": "$pos"}}}},
		{{Key: "$sort", Value: bson.M{"pos": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate menu categories: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Slug string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode menu categories: %w", err)
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Slug)
	}
	return out, nil
}

func (r *RestaurantRepository) RenameMenuCategory(ctx context.Context, from, to string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"item.category": from}},
	})
	res, err := r.coll.UpdateMany(ctx,
		bson.M{"menu.category": from},
		bson.M{"$set": bson.M{"menu.$[item].category": to}},
		opts,
	)
	if err != nil {
		return 0, fmt.Errorf("rename menu category: %w", err)
	}
	return res.ModifiedCount, nil
}

func (r *RestaurantRepository) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.coll, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName(restaurantEmailIndex)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName(restaurantUsernameIndex)},
		{Keys: bson.D{{Key: "menu.category", Value: 1}}},
	})
}
