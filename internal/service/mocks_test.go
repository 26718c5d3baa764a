package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
)

type mockUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	create      func(ctx context.Context, email, name, passwordHash, role string) (*entity.User, error)
	list        func(ctx context.Context) ([]entity.User, error)
	update      func(ctx context.Context, id uuid.UUID, update repository.UserUpdate) (*entity.User, error)
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("findByEmail not implemented")
}

func (m *mockUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByID != nil {
		return m.findByID(ctx, id)
	}
	return nil, errors.New("FindByID not implemented")
}

func (m *mockUsersRepository) Create(ctx context.Context, email, name, passwordHash, role string) (*entity.User, error) {
	if m.create != nil {
		return m.create(ctx, email, name, passwordHash, role)
	}
	return nil, errors.New("create not implemented")
}

func (m *mockUsersRepository) List(ctx context.Context) ([]entity.User, error) {
	if m.list != nil {
		return m.list(ctx)
	}
	return nil, errors.New("List not implemented")
}

func (m *mockUsersRepository) Update(ctx context.Context, id uuid.UUID, update repository.UserUpdate) (*entity.User, error) {
	if m.update != nil {
		return m.update(ctx, id, update)
	}
	return nil, errors.New("Update not implemented")
}

func (m *mockUsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("Delete not implemented")
}

type mockCompaniesRepository struct {
	list   func(ctx context.Context, activeOnly bool) ([]entity.Company, error)
	get    func(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	create func(ctx context.Context, company *entity.Company) error
	update func(ctx context.Context, company *entity.Company) error
	delete func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCompaniesRepository) List(ctx context.Context, activeOnly bool) ([]entity.Company, error) {
	if m.list != nil {
		return m.list(ctx, activeOnly)
	}
	return nil, errors.New("list not implemented")
}

func (m *mockCompaniesRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	if m.get != nil {
		return m.get(ctx, id)
	}
	return nil, errors.New("get not implemented")
}

func (m *mockCompaniesRepository) Create(ctx context.Context, company *entity.Company) error {
	if m.create != nil {
		return m.create(ctx, company)
	}
	return errors.New("create not implemented")
}

func (m *mockCompaniesRepository) Update(ctx context.Context, company *entity.Company) error {
	if m.update != nil {
		return m.update(ctx, company)
	}
	return errors.New("update not implemented")
}

func (m *mockCompaniesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete != nil {
		return m.delete(ctx, id)
	}
	return errors.New("delete not implemented")
}

// memoryRepository is a tiny in-memory store shared by the flat content mocks.
type memoryRepository[T any] struct {
	items   []T
	created []*T
	updated []*T
	err     error
}

func (m *memoryRepository[T]) List(ctx context.Context, activeOnly bool) ([]T, error) {
	return m.items, m.err
}

func (m *memoryRepository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.items) == 0 {
		return nil, repository.ErrNotFound
	}
	return &m.items[0], nil
}

func (m *memoryRepository[T]) Create(ctx context.Context, item *T) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, item)
	return nil
}

func (m *memoryRepository[T]) Update(ctx context.Context, item *T) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, item)
	return nil
}

func (m *memoryRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.err
}

var (
	_ repository.StatisticsRepository   = (*memoryRepository[entity.Statistic])(nil)
	_ repository.TestimonialsRepository = (*memoryRepository[entity.Testimonial])(nil)
	_ repository.ServicesRepository     = (*memoryRepository[entity.Service])(nil)
	_ repository.SectionsRepository     = (*memoryRepository[entity.WebsiteSection])(nil)
)

type mockContactRepository struct {
	created  []*entity.ContactMessage
	markRead func(ctx context.Context, id uuid.UUID, isRead bool) (*entity.ContactMessage, error)
	err      error
}

func (m *mockContactRepository) Create(ctx context.Context, msg *entity.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	msg.ID = uuid.New()
	m.created = append(m.created, msg)
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]entity.ContactMessage, error) {
	return nil, m.err
}

func (m *mockContactRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	return nil, repository.ErrContactMessageNotFound
}

func (m *mockContactRepository) MarkRead(ctx context.Context, id uuid.UUID, isRead bool) (*entity.ContactMessage, error) {
	if m.markRead != nil {
		return m.markRead(ctx, id, isRead)
	}
	return nil, errors.New("markRead not implemented")
}

func (m *mockContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.err
}
