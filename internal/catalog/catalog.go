package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
)

const (
	// CategoryBase marks services that can anchor a pack.
	CategoryBase = "base"
	// CategoryAddon marks services that extend a base service.
	CategoryAddon = "addon"
)

// idPattern restricts ids to URL and path safe slugs.
var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	// ErrInvalidCatalog indicates the catalog records violate validation rules.
	ErrInvalidCatalog = errors.New("invalid service catalog")
)

// Service is a sellable catalog line item. Records are defined once and never
// mutated at runtime.
type Service struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Price        int      `json:"price" yaml:"price"`
	Duration     string   `json:"duration,omitempty" yaml:"duration"`
	Features     []string `json:"features" yaml:"features"`
	Category     string   `json:"category" yaml:"category"`
	SubCategory  string   `json:"subCategory" yaml:"sub_category"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies"`
}

// IsBase reports whether the service can anchor a pack.
func (s Service) IsBase() bool {
	return s.Category == CategoryBase
}

// DependsOn reports whether id is listed in the service dependencies.
func (s Service) DependsOn(id string) bool {
	return slices.Contains(s.Dependencies, id)
}

func (s Service) clone() Service {
	s.Features = slices.Clone(s.Features)
	s.Dependencies = slices.Clone(s.Dependencies)
	return s
}

// Store provides read access to the service catalog.
type Store interface {
	All() []Service
	Find(id string) (Service, bool)
	BySubCategory(subCategory string) []Service
	SubCategories() []string
}

// MemoryStore keeps the catalog in-memory. It is read-only after construction,
// so concurrent readers need no locking.
type MemoryStore struct {
	services []Service
	index    map[string]int
}

// NewMemoryStore validates services and indexes them by identifier.
// Catalog order is preserved.
func NewMemoryStore(services []Service) (*MemoryStore, error) {
	if err := validate(services); err != nil {
		return nil, err
	}

	store := &MemoryStore{
		services: make([]Service, len(services)),
		index:    make(map[string]int, len(services)),
	}
	for i, svc := range services {
		store.services[i] = svc.clone()
		store.index[svc.ID] = i
	}
	return store, nil
}

// NewDefaultStore returns a store backed by the built-in catalog.
func NewDefaultStore() *MemoryStore {
	store, err := NewMemoryStore(Default())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return store
}

// All returns a copy of every service in catalog order.
func (s *MemoryStore) All() []Service {
	out := make([]Service, len(s.services))
	for i, svc := range s.services {
		out[i] = svc.clone()
	}
	return out
}

// Find looks a service up by identifier.
func (s *MemoryStore) Find(id string) (Service, bool) {
	i, ok := s.index[id]
	if !ok {
		return Service{}, false
	}
	return s.services[i].clone(), true
}

// BySubCategory returns the services sharing subCategory, in catalog order.
func (s *MemoryStore) BySubCategory(subCategory string) []Service {
	var out []Service
	for _, svc := range s.services {
		if svc.SubCategory == subCategory {
			out = append(out, svc.clone())
		}
	}
	return out
}

// SubCategories returns the distinct sub-categories, sorted.
func (s *MemoryStore) SubCategories() []string {
	seen := make(map[string]struct{})
	for _, svc := range s.services {
		if svc.SubCategory != "" {
			seen[svc.SubCategory] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for sub := range seen {
		out = append(out, sub)
	}
	sort.Strings(out)
	return out
}

func validate(services []Service) error {
	if len(services) == 0 {
		return fmt.Errorf("%w: no services", ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(services))
	for i, svc := range services {
		id := strings.TrimSpace(svc.ID)
		if id == "" {
			return fmt.Errorf("%w: service #%d has an empty id", ErrInvalidCatalog, i)
		}
		if id != svc.ID {
			return fmt.Errorf("%w: service id %q has surrounding whitespace", ErrInvalidCatalog, svc.ID)
		}
		if !idPattern.MatchString(id) {
			return fmt.Errorf("%w: service id %q must be a lowercase slug (a-z, 0-9, -)", ErrInvalidCatalog, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate service id %q", ErrInvalidCatalog, id)
		}
		seen[id] = struct{}{}

		if strings.TrimSpace(svc.Name) == "" {
			return fmt.Errorf("%w: service %q has an empty name", ErrInvalidCatalog, id)
		}
		if svc.Price < 0 {
			return fmt.Errorf("%w: service %q has a negative price", ErrInvalidCatalog, id)
		}
	}
	return nil
}
