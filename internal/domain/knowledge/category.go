package knowledge

import (
	"strings"

	"github.com/deskhub/deskhub/internal/shared/errors"
)

// Category groups articles. Categories are seeded, not edited through the API.
type Category struct {
	id          uint
	name        string
	slug        string
	description string
	iconName    string
}

func NewCategory(name, description, iconName string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("category name is required")
	}
	slug := Slugify(name)
	if slug == "" {
		return nil, errors.NewValidationError("category name must contain letters or digits")
	}
	return &Category{
		name:        name,
		slug:        slug,
		description: strings.TrimSpace(description),
		iconName:    strings.TrimSpace(iconName),
	}, nil
}

func ReconstructCategory(id uint, name, slug, description, iconName string) *Category {
	return &Category{id: id, name: name, slug: slug, description: description, iconName: iconName}
}

func (c *Category) ID() uint            { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Slug() string        { return c.slug }
func (c *Category) Description() string { return c.description }
func (c *Category) IconName() string    { return c.iconName }

func (c *Category) SetID(id uint) {
	c.id = id
}
