package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
)

func mustVOEmail(raw string) valueobjects.Email {
	email, err := valueobjects.NewEmail(raw)
	if err != nil {
		panic(err)
	}
	return email
}

// fakeUserRepo é uma implementação em memória de
// repositories.UserRepository com a mesma semântica de slug e de
// ausência (nil, nil) da implementação real
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
	seq   int

	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}

	f.seq++
	clone := *user
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("user-%d", f.seq)
	}
	if clone.Role == "" {
		clone.Role = entities.RoleUser
	}
	if clone.Status == "" {
		clone.Status = entities.StatusActive
	}
	if clone.JoinedAt.IsZero() {
		clone.JoinedAt = time.Now().UTC()
	}

	base := valueobjects.Slugify(clone.Slug)
	if base == "" {
		base = valueobjects.Slugify(clone.FullName)
	}
	if base == "" {
		base = "user"
	}
	for n := 0; ; n++ {
		candidate := valueobjects.SlugWithSuffix(base, n)
		if f.slugOwner(candidate) == nil {
			clone.Slug = candidate
			break
		}
	}

	clone.CreatedAt = time.Now().UTC()
	clone.UpdatedAt = clone.CreatedAt
	f.users[clone.ID] = &clone

	result := clone
	return &result, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id string, patch repositories.UserPatch) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return nil, f.updateErr
	}

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
		candidate := valueobjects.Slugify(*patch.FullName)
		if candidate != "" && candidate != user.Slug {
			owner := f.slugOwner(candidate)
			if owner == nil || owner.ID == id {
				user.Slug = candidate
			}
		}
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.EmailVerified != nil {
		user.EmailVerified = *patch.EmailVerified
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Status != nil {
		user.Status = *patch.Status
	}
	if patch.TrustScore != nil {
		user.TrustScore = *patch.TrustScore
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Contact != nil {
		user.Contact = *patch.Contact
	}
	if patch.Insurance != nil {
		user.Insurance = *patch.Insurance
	}
	if patch.Details != nil {
		user.Details = *patch.Details
	}
	if patch.SEO != nil {
		user.SEO = *patch.SEO
	}
	if patch.LastLoginAt != nil {
		ts := *patch.LastLoginAt
		user.LastLoginAt = &ts
	}
	user.UpdatedAt = time.Now().UTC()

	result := *user
	return &result, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	delete(f.users, id)

	result := *user
	return &result, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	result := *user
	return &result, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email.String() == email {
			result := *user
			return &result, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindBySlug(_ context.Context, slug string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if owner := f.slugOwner(slug); owner != nil {
		result := *owner
		return &result, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByProviderAccount(_ context.Context, provider, accountID string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Auth.Provider == provider && user.Auth.ProviderAccountID == accountID {
			result := *user
			return &result, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, _ repositories.ListFilters) ([]*entities.User, int64, error) {
	return f.all()
}

func (f *fakeUserRepo) Search(_ context.Context, _ string, _, _ int) ([]*entities.User, int64, error) {
	return f.all()
}

func (f *fakeUserRepo) Filter(_ context.Context, _ repositories.FilterCriteria, _, _ int) ([]*entities.User, int64, error) {
	return f.all()
}

func (f *fakeUserRepo) Stats(_ context.Context) (*repositories.DirectoryStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return &repositories.DirectoryStats{
		TotalUsers:      int64(len(f.users)),
		ByRole:          make(map[entities.Role]int64),
		ByStatus:        make(map[entities.Status]int64),
		GeneratedAtUnix: time.Now().Unix(),
	}, nil
}

func (f *fakeUserRepo) all() ([]*entities.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := make([]*entities.User, 0, len(f.users))
	for _, user := range f.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, int64(len(users)), nil
}

// slugOwner exige que o mutex já esteja adquirido
func (f *fakeUserRepo) slugOwner(slug string) *entities.User {
	for _, user := range f.users {
		if user.Slug == slug {
			return user
		}
	}
	return nil
}

// fakeNewsRepo é uma implementação em memória de
// repositories.NewsRepository
type fakeNewsRepo struct {
	news    []*entities.News
	listErr error
}

func (f *fakeNewsRepo) Create(_ context.Context, news *entities.News) (*entities.News, error) {
	f.news = append(f.news, news)
	return news, nil
}

func (f *fakeNewsRepo) FindBySlug(_ context.Context, slug string) (*entities.News, error) {
	for _, n := range f.news {
		if n.Slug == slug {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNewsRepo) ListPublished(_ context.Context, limit int) ([]*entities.News, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > len(f.news) {
		limit = len(f.news)
	}
	return f.news[:limit], nil
}

// fakeCache guarda os valores serializados como a implementação Redis
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	f.hits++
	return true, json.Unmarshal(raw, out)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	f.sets++
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.entries, key)
	return nil
}

// fakeVerifier devolve uma identidade fixa ou um erro configurado
type fakeVerifier struct {
	identity *ports.GoogleIdentity
	err      error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*ports.GoogleIdentity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

// nopLogger descarta tudo
type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }
