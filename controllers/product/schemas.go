package productcontroller

import "github.com/shoppee-dev/shoppee-api/models"

type CategorySchema struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	IsSub    bool             `json:"is_sub"`
	ImageURL string           `json:"image_url"`
	Children []CategorySchema `json:"children,omitempty"`
}

func newCategorySchema(c *models.Category) CategorySchema {
	schema := CategorySchema{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		IsSub:    c.IsSub,
		ImageURL: c.ImageURL(),
	}
	for i := range c.Children {
		schema.Children = append(schema.Children, newCategorySchema(&c.Children[i]))
	}
	return schema
}

func categorySchemas(categories []models.Category) []CategorySchema {
	schemas := make([]CategorySchema, 0, len(categories))
	for i := range categories {
		schemas = append(schemas, newCategorySchema(&categories[i]))
	}
	return schemas
}
