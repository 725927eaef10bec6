package knowledge

import (
	"strings"
	"time"

	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/errors"
)

const (
	MaxTitleLength   = 200
	MaxExcerptLength = 500
)

// Article is a markdown knowledge base entry. Its slug is derived from the
// title and unique across the store.
type Article struct {
	id         uint
	title      string
	slug       string
	content    string
	excerpt    string
	imageURL   string
	categoryID uint
	authorID   uint
	createdAt  time.Time
	updatedAt  time.Time
}

// ArticleInput carries the editable fields of an article.
type ArticleInput struct {
	Title      string
	Content    string
	Excerpt    string
	ImageURL   string
	CategoryID uint
}

func NewArticle(in ArticleInput, authorID uint) (*Article, error) {
	if authorID == 0 {
		return nil, errors.NewValidationError("author is required")
	}
	a := &Article{authorID: authorID}
	if err := a.apply(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a.createdAt = now
	a.updatedAt = now
	return a, nil
}

func ReconstructArticle(
	id uint,
	title, slug, content, excerpt, imageURL string,
	categoryID, authorID uint,
	createdAt, updatedAt time.Time,
) *Article {
	return &Article{
		id:         id,
		title:      title,
		slug:       slug,
		content:    content,
		excerpt:    excerpt,
		imageURL:   imageURL,
		categoryID: categoryID,
		authorID:   authorID,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Article) ID() uint             { return a.id }
func (a *Article) Title() string        { return a.title }
func (a *Article) Slug() string         { return a.slug }
func (a *Article) Content() string      { return a.content }
func (a *Article) Excerpt() string      { return a.excerpt }
func (a *Article) ImageURL() string     { return a.imageURL }
func (a *Article) CategoryID() uint     { return a.categoryID }
func (a *Article) AuthorID() uint       { return a.authorID }
func (a *Article) CreatedAt() time.Time { return a.createdAt }
func (a *Article) UpdatedAt() time.Time { return a.updatedAt }

func (a *Article) SetID(id uint) {
	a.id = id
}

// CanBeEditedBy allows the author and admins.
func (a *Article) CanBeEditedBy(p authorization.Principal) bool {
	return p.IsAdmin() || p.Owns(a.authorID)
}

// Update replaces the editable fields. The slug follows the title.
func (a *Article) Update(in ArticleInput) error {
	if err := a.apply(in); err != nil {
		return err
	}
	a.updatedAt = time.Now().UTC()
	return nil
}

func (a *Article) apply(in ArticleInput) error {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	excerpt := strings.TrimSpace(in.Excerpt)

	if title == "" || content == "" || excerpt == "" || in.CategoryID == 0 {
		return errors.NewValidationError("Title, content, excerpt, and category are required.")
	}
	if len(title) > MaxTitleLength {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(excerpt) > MaxExcerptLength {
		return errors.NewValidationError("excerpt exceeds maximum length of 500 characters")
	}
	slug := Slugify(title)
	if slug == "" {
		return errors.NewValidationError("title must contain letters or digits")
	}

	a.title = title
	a.slug = slug
	a.content = content
	a.excerpt = excerpt
	a.imageURL = strings.TrimSpace(in.ImageURL)
	a.categoryID = in.CategoryID
	return nil
}
