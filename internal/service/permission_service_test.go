package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siga-edu/academic-service/internal/cache"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/repository"
)

type stubPermissionRepo struct {
	byName  map[string]*domain.Permission
	granted map[string][]string
	listErr error
}

func newStubPermissionRepo(perms ...*domain.Permission) *stubPermissionRepo {
	r := &stubPermissionRepo{byName: map[string]*domain.Permission{}, granted: map[string][]string{}}
	for _, p := range perms {
		r.byName[p.Name] = p
	}
	return r
}

func (r *stubPermissionRepo) Create(_ context.Context, permission *domain.Permission) error {
	permission.ID = "perm-" + permission.Name
	r.byName[permission.Name] = permission
	return nil
}

func (r *stubPermissionRepo) Delete(_ context.Context, _ string) error { return nil }

func (r *stubPermissionRepo) GetByID(_ context.Context, _ string) (*domain.Permission, error) {
	return nil, pgx.ErrNoRows
}

func (r *stubPermissionRepo) GetByName(_ context.Context, name string) (*domain.Permission, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (r *stubPermissionRepo) List(_ context.Context, _, _ int) ([]domain.Permission, error) {
	perms := make([]domain.Permission, 0, len(r.byName))
	for _, p := range r.byName {
		perms = append(perms, *p)
	}
	return perms, nil
}

func (r *stubPermissionRepo) Grant(_ context.Context, userID, permissionID string) error {
	r.granted[userID] = append(r.granted[userID], permissionID)
	return nil
}

func (r *stubPermissionRepo) Revoke(_ context.Context, userID, _ string) error {
	r.granted[userID] = nil
	return nil
}

func (r *stubPermissionRepo) ListNamesForUser(_ context.Context, userID string) ([]string, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	names := make([]string, 0)
	for name, p := range r.byName {
		for _, id := range r.granted[userID] {
			if p.ID == id {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

func (r *stubPermissionRepo) WithTx(_ repository.DBTX) repository.PermissionRepository {
	return r
}

func noopCache() *cache.PermissionCache {
	return cache.NewPermissionCache(nil, 0, zap.NewNop())
}

func TestGrantAndListUserPermissions(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "ana@escola.edu.br", Role: domain.RoleFuncionario, Active: true}
	permRepo := newStubPermissionRepo(&domain.Permission{ID: "perm-1", Name: domain.PermCoursesManage})
	svc := NewPermissionService(permRepo, newStubUserRepo(user), noopCache(), events.NewInMemoryDispatcher())

	names, err := svc.ListUserPermissions(context.Background(), "user-1")
	require.NoError(t, err)
	require.Empty(t, names)

	require.NoError(t, svc.Grant(context.Background(), "admin", "user-1", domain.PermCoursesManage))

	names, err = svc.ListUserPermissions(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{domain.PermCoursesManage}, names)
}

func TestGrantUnknownUser(t *testing.T) {
	permRepo := newStubPermissionRepo(&domain.Permission{ID: "perm-1", Name: domain.PermCoursesManage})
	svc := NewPermissionService(permRepo, newStubUserRepo(), noopCache(), events.NewInMemoryDispatcher())

	err := svc.Grant(context.Background(), "admin", "missing", domain.PermCoursesManage)
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestGrantUnknownPermission(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "ana@escola.edu.br", Active: true}
	svc := NewPermissionService(newStubPermissionRepo(), newStubUserRepo(user), noopCache(), events.NewInMemoryDispatcher())

	err := svc.Grant(context.Background(), "admin", "user-1", "inexistente.permissao")
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestGrantPublishesEvent(t *testing.T) {
	user := &domain.User{ID: "user-1", Email: "ana@escola.edu.br", Active: true}
	permRepo := newStubPermissionRepo(&domain.Permission{ID: "perm-1", Name: domain.PermUsersManage})
	dispatcher := events.NewInMemoryDispatcher()

	var got []events.Event
	dispatcher.Subscribe(events.EventGrantChanged, func(_ context.Context, e events.Event) error {
		got = append(got, e)
		return nil
	})

	svc := NewPermissionService(permRepo, newStubUserRepo(user), noopCache(), dispatcher)
	require.NoError(t, svc.Grant(context.Background(), "admin", "user-1", domain.PermUsersManage))
	require.Len(t, got, 1)
	require.Equal(t, "user-1", got[0].ResourceID)
	require.Equal(t, "admin", got[0].ActorID)
}
