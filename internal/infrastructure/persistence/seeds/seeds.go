// Package seeds loads reference data from YAML: ticket lookups, knowledge
// base categories and an optional bootstrap admin. Every step is idempotent.
package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deskhub/deskhub/internal/domain/knowledge"
	"github.com/deskhub/deskhub/internal/domain/ticket"
	"github.com/deskhub/deskhub/internal/domain/user"
	vo "github.com/deskhub/deskhub/internal/domain/user/valueobjects"
	"github.com/deskhub/deskhub/internal/shared/authorization"
	"github.com/deskhub/deskhub/internal/shared/logger"
)

//go:embed default.yaml
var defaultSeed []byte

type KBCategorySeed struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	IconName    string `yaml:"icon_name"`
}

type AdminSeed struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password"`
}

type Data struct {
	TicketCategories []string         `yaml:"ticket_categories"`
	TicketPriorities []string         `yaml:"ticket_priorities"`
	KBCategories     []KBCategorySeed `yaml:"kb_categories"`
	BootstrapAdmin   *AdminSeed       `yaml:"bootstrap_admin"`
}

// Load reads path, or the embedded defaults when path is empty.
func Load(path string) (*Data, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &data, nil
}

type Seeder struct {
	lookups    ticket.LookupRepository
	categories knowledge.CategoryRepository
	users      user.Repository
	hasher     user.PasswordHasher
	logger     logger.Interface
}

func NewSeeder(
	lookups ticket.LookupRepository,
	categories knowledge.CategoryRepository,
	users user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		lookups:    lookups,
		categories: categories,
		users:      users,
		hasher:     hasher,
		logger:     logger,
	}
}

// Run applies data. An admin password supplied through
// DESKHUB_BOOTSTRAP_ADMIN_PASSWORD overrides the file.
func (s *Seeder) Run(ctx context.Context, data *Data) error {
	for _, name := range data.TicketCategories {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if err := s.lookups.EnsureCategory(ctx, name); err != nil {
			return fmt.Errorf("seed ticket category %q: %w", name, err)
		}
	}
	for _, name := range data.TicketPriorities {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if err := s.lookups.EnsurePriority(ctx, name); err != nil {
			return fmt.Errorf("seed ticket priority %q: %w", name, err)
		}
	}

	created := 0
	for _, seed := range data.KBCategories {
		ok, err := s.seedCategory(ctx, seed)
		if err != nil {
			return err
		}
		if ok {
			created++
		}
	}

	s.logger.Infow("reference data seeded",
		"ticket_categories", len(data.TicketCategories),
		"ticket_priorities", len(data.TicketPriorities),
		"kb_categories_created", created)

	if data.BootstrapAdmin == nil {
		return nil
	}
	admin := *data.BootstrapAdmin
	if pw := os.Getenv("DESKHUB_BOOTSTRAP_ADMIN_PASSWORD"); pw != "" {
		admin.Password = pw
	}
	return s.seedAdmin(ctx, admin)
}

func (s *Seeder) seedCategory(ctx context.Context, seed KBCategorySeed) (bool, error) {
	category, err := knowledge.NewCategory(seed.Name, seed.Description, seed.IconName)
	if err != nil {
		return false, fmt.Errorf("seed kb category %q: %w", seed.Name, err)
	}
	existing, err := s.categories.GetBySlug(ctx, category.Slug())
	if err != nil {
		return false, fmt.Errorf("seed kb category %q: %w", seed.Name, err)
	}
	if existing != nil {
		return false, nil
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return false, fmt.Errorf("seed kb category %q: %w", seed.Name, err)
	}
	return true, nil
}

func (s *Seeder) seedAdmin(ctx context.Context, seed AdminSeed) error {
	if strings.TrimSpace(seed.Password) == "" {
		s.logger.Infow("bootstrap admin skipped, no password configured")
		return nil
	}
	email, err := vo.NewEmail(seed.Email)
	if err != nil {
		return fmt.Errorf("seed bootstrap admin: %w", err)
	}
	existing, err := s.users.GetByEmail(ctx, email.String())
	if err != nil {
		return fmt.Errorf("seed bootstrap admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := s.hasher.Hash(seed.Password)
	if err != nil {
		return fmt.Errorf("seed bootstrap admin: %w", err)
	}
	admin, err := user.NewUser(email, seed.FullName, authorization.RoleAdmin, hash)
	if err != nil {
		return fmt.Errorf("seed bootstrap admin: %w", err)
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed bootstrap admin: %w", err)
	}

	s.logger.Infow("bootstrap admin created", "user_id", admin.ID(), "email", email.String())
	return nil
}
