package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/siga-edu/academic-service/internal/cache"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/repository"
)

// PermissionService manages permissions and user grants, fronted by the
// redis read-through cache. It implements auth.PermissionSource.
type PermissionService struct {
	permissions repository.PermissionRepository
	users       repository.UserRepository
	cache       *cache.PermissionCache
	dispatcher  events.Dispatcher
}

// NewPermissionService builds the service.
func NewPermissionService(permissions repository.PermissionRepository, users repository.UserRepository, permCache *cache.PermissionCache, dispatcher events.Dispatcher) *PermissionService {
	return &PermissionService{
		permissions: permissions,
		users:       users,
		cache:       permCache,
		dispatcher:  dispatcher,
	}
}

// ListUserPermissions aggregates every permission name granted to a user.
// The store stays authoritative; the cache only shortcuts repeated lookups
// inside its TTL.
func (s *PermissionService) ListUserPermissions(ctx context.Context, userID string) ([]string, error) {
	if names, ok := s.cache.Get(ctx, userID); ok {
		return names, nil
	}
	names, err := s.permissions.ListNamesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, userID, names)
	return names, nil
}

// Create registers a new permission name.
func (s *PermissionService) Create(ctx context.Context, actorID, name, description string) (*domain.Permission, error) {
	permission := &domain.Permission{Name: name, Description: description}
	if err := s.permissions.Create(ctx, permission); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityCreated, actorID, permission.ID)
	return permission, nil
}

// List returns a page of permissions.
func (s *PermissionService) List(ctx context.Context, limit, offset int) ([]domain.Permission, error) {
	return s.permissions.List(ctx, limit, offset)
}

// Delete removes a permission. Outstanding cached sets age out within the
// cache TTL.
func (s *PermissionService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.permissions.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.EventEntityDeleted, actorID, id)
	return nil
}

// Grant gives a user the named permission.
func (s *PermissionService) Grant(ctx context.Context, actorID, userID, name string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	permission, err := s.permissions.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if err := s.permissions.Grant(ctx, user.ID, permission.ID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, user.ID)
	s.publishGrant(ctx, actorID, user.ID, name)
	return nil
}

// Revoke removes the named permission from a user.
func (s *PermissionService) Revoke(ctx context.Context, actorID, userID, name string) error {
	permission, err := s.permissions.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if err := s.permissions.Revoke(ctx, userID, permission.ID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, userID)
	s.publishGrant(ctx, actorID, userID, name)
	return nil
}

func (s *PermissionService) publish(ctx context.Context, eventType events.EventType, actorID, resourceID string) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Resource:   "permissoes",
		ResourceID: resourceID,
		ActorID:    actorID,
		Timestamp:  time.Now(),
	})
}

func (s *PermissionService) publishGrant(ctx context.Context, actorID, userID, name string) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventGrantChanged,
		Resource:   "permissoes",
		ResourceID: userID,
		ActorID:    actorID,
		Timestamp:  time.Now(),
		Payload:    map[string]string{"permissao": name},
	})
}
