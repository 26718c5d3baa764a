package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gsccapital/website/api/internal/entity"
	"github.com/gsccapital/website/api/internal/repository"
)

var errNotImplemented = errors.New("not implemented")

type companiesRepoStub struct {
	list   func(ctx context.Context, activeOnly bool) ([]entity.Company, error)
	get    func(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	create func(ctx context.Context, company *entity.Company) error
	update func(ctx context.Context, company *entity.Company) error
	delete func(ctx context.Context, id uuid.UUID) error
}

func (s *companiesRepoStub) List(ctx context.Context, activeOnly bool) ([]entity.Company, error) {
	if s.list != nil {
		return s.list(ctx, activeOnly)
	}
	return nil, errNotImplemented
}

func (s *companiesRepoStub) Get(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return nil, errNotImplemented
}

func (s *companiesRepoStub) Create(ctx context.Context, company *entity.Company) error {
	if s.create != nil {
		return s.create(ctx, company)
	}
	return errNotImplemented
}

func (s *companiesRepoStub) Update(ctx context.Context, company *entity.Company) error {
	if s.update != nil {
		return s.update(ctx, company)
	}
	return errNotImplemented
}

func (s *companiesRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return errNotImplemented
}

type contactRepoStub struct {
	create   func(ctx context.Context, msg *entity.ContactMessage) error
	list     func(ctx context.Context) ([]entity.ContactMessage, error)
	markRead func(ctx context.Context, id uuid.UUID, isRead bool) (*entity.ContactMessage, error)
	delete   func(ctx context.Context, id uuid.UUID) error
}

func (s *contactRepoStub) Create(ctx context.Context, msg *entity.ContactMessage) error {
	if s.create != nil {
		return s.create(ctx, msg)
	}
	return errNotImplemented
}

func (s *contactRepoStub) List(ctx context.Context) ([]entity.ContactMessage, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, errNotImplemented
}

func (s *contactRepoStub) Get(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	return nil, repository.ErrContactMessageNotFound
}

func (s *contactRepoStub) MarkRead(ctx context.Context, id uuid.UUID, isRead bool) (*entity.ContactMessage, error) {
	if s.markRead != nil {
		return s.markRead(ctx, id, isRead)
	}
	return nil, errNotImplemented
}

func (s *contactRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return errNotImplemented
}

type usersRepoStub struct {
	findByEmail func(ctx context.Context, email string) (*entity.User, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	create      func(ctx context.Context, email, name, passwordHash, role string) (*entity.User, error)
	list        func(ctx context.Context) ([]entity.User, error)
	update      func(ctx context.Context, id uuid.UUID, update repository.UserUpdate) (*entity.User, error)
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (u *usersRepoStub) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u.findByEmail != nil {
		return u.findByEmail(ctx, email)
	}
	return nil, repository.ErrUserNotFound
}

func (u *usersRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u.findByID != nil {
		return u.findByID(ctx, id)
	}
	return nil, repository.ErrUserNotFound
}

func (u *usersRepoStub) Create(ctx context.Context, email, name, passwordHash, role string) (*entity.User, error) {
	if u.create != nil {
		return u.create(ctx, email, name, passwordHash, role)
	}
	return nil, errNotImplemented
}

func (u *usersRepoStub) List(ctx context.Context) ([]entity.User, error) {
	if u.list != nil {
		return u.list(ctx)
	}
	return nil, errNotImplemented
}

func (u *usersRepoStub) Update(ctx context.Context, id uuid.UUID, update repository.UserUpdate) (*entity.User, error) {
	if u.update != nil {
		return u.update(ctx, id, update)
	}
	return nil, errNotImplemented
}

func (u *usersRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if u.delete != nil {
		return u.delete(ctx, id)
	}
	return errNotImplemented
}
