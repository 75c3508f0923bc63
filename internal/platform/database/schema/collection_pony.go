package schema

// CollectionPonyTable represents the 'collection.pony' table
type CollectionPonyTable struct {
	Table       string
	ID          string
	Name        string
	Kind        string
	Personality string
	Skills      string
	Description string
	Image       string
	Category    string
	Role        string
	CreatedAt   string
	UpdatedAt   string
}

// CollectionPony is the schema definition for collection.pony
var CollectionPony = CollectionPonyTable{
	Table:       "collection.pony",
	ID:          "id",
	Name:        "name",
	Kind:        "kind",
	Personality: "personality",
	Skills:      "skills",
	Description: "description",
	Image:       "image",
	Category:    "category",
	Role:        "role",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns the selectable columns in scan order.
func (t CollectionPonyTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Kind, t.Personality, t.Skills, t.Description,
		t.Image, t.Category, t.Role, t.CreatedAt, t.UpdatedAt,
	}
}
