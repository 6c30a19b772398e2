package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siga-edu/academic-service/internal/auth"
	"github.com/siga-edu/academic-service/internal/cache"
	"github.com/siga-edu/academic-service/internal/domain"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/repository"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

// PeopleService manages user accounts and the professor/staff profiles
// linked to them. Profile creation and removal touch two tables and run
// inside a single transaction: either both records persist or neither does.
type PeopleService struct {
	pool       *pgxpool.Pool
	users      repository.UserRepository
	professors repository.ProfessorRepository
	staff      repository.StaffRepository
	permCache  *cache.PermissionCache
	dispatcher events.Dispatcher
	bcryptCost int
}

// PeopleDependencies bundles requirements for the people service.
type PeopleDependencies struct {
	Pool            *pgxpool.Pool
	UserRepo        repository.UserRepository
	ProfessorRepo   repository.ProfessorRepository
	StaffRepo       repository.StaffRepository
	PermissionCache *cache.PermissionCache
	Dispatcher      events.Dispatcher
	BcryptCost      int
}

// NewPeopleService builds the service.
func NewPeopleService(deps PeopleDependencies) *PeopleService {
	return &PeopleService{
		pool:       deps.Pool,
		users:      deps.UserRepo,
		professors: deps.ProfessorRepo,
		staff:      deps.StaffRepo,
		permCache:  deps.PermissionCache,
		dispatcher: deps.Dispatcher,
		bcryptCost: deps.BcryptCost,
	}
}

// ProfessorCreateInput describes professor creation.
type ProfessorCreateInput struct {
	Nome         string
	Matricula    string
	Titulacao    string
	Departamento string
	Email        string
	Senha        string
}

// StaffCreateInput describes staff creation.
type StaffCreateInput struct {
	Nome      string
	Matricula string
	Cargo     string
	Setor     string
	Email     string
	Senha     string
}

// CreateUser registers a standalone account. The plaintext password is
// replaced by its hash before anything touches the store.
func (s *PeopleService) CreateUser(ctx context.Context, actorID, email, senha string, role domain.UserRole) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, apperrors.NewBadRequest("tipo de usuário inválido")
	}
	hash, err := auth.HashPassword(senha, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Email: email, PasswordHash: hash, Role: role, Active: true}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityCreated, actorID, "usuarios", user.ID)
	return user, nil
}

// Profile bundles an account with its role-specific record.
type Profile struct {
	User      *domain.User
	Professor *domain.Professor
	Staff     *domain.StaffMember
}

// GetProfile loads the account and, when one exists, the professor or staff
// record linked to it.
func (s *PeopleService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{User: user}
	switch user.Role {
	case domain.RoleProfessor:
		professor, err := s.professors.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		profile.Professor = professor
	case domain.RoleFuncionario:
		staff, err := s.staff.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		profile.Staff = staff
	}
	return profile, nil
}

// GetUser loads one account.
func (s *PeopleService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers returns a page of accounts.
func (s *PeopleService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, limit, offset)
}

// UpdateUser applies the present fields to an account.
func (s *PeopleService) UpdateUser(ctx context.Context, actorID, id string, email, senha *string, ativo *bool) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if email != nil {
		user.Email = *email
	}
	if senha != nil {
		hash, err := auth.HashPassword(*senha, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if ativo != nil {
		user.Active = *ativo
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityUpdated, actorID, "usuarios", user.ID)
	return user, nil
}

// DeleteUser removes an account and drops its cached permission set.
func (s *PeopleService) DeleteUser(ctx context.Context, actorID, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.permCache.Invalidate(ctx, id)
	s.publish(ctx, events.EventEntityDeleted, actorID, "usuarios", id)
	return nil
}

// CreateProfessor creates the profile and its linked account atomically.
func (s *PeopleService) CreateProfessor(ctx context.Context, actorID string, input ProfessorCreateInput) (*domain.Professor, error) {
	hash, err := auth.HashPassword(input.Senha, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	user := &domain.User{Email: input.Email, PasswordHash: hash, Role: domain.RoleProfessor, Active: true}
	if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
		return nil, err
	}

	professor := &domain.Professor{
		UserID:       user.ID,
		Name:         input.Nome,
		Matricula:    input.Matricula,
		Titulacao:    input.Titulacao,
		Departamento: input.Departamento,
		Active:       true,
	}
	if err := s.professors.WithTx(tx).Create(ctx, professor); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEntityCreated, actorID, "professores", professor.ID)
	return professor, nil
}

// ListProfessors returns a page of professor profiles.
func (s *PeopleService) ListProfessors(ctx context.Context, limit, offset int) ([]domain.Professor, error) {
	return s.professors.List(ctx, limit, offset)
}

// GetProfessor loads one professor.
func (s *PeopleService) GetProfessor(ctx context.Context, id string) (*domain.Professor, error) {
	return s.professors.GetByID(ctx, id)
}

// UpdateProfessor applies the present fields to a profile.
func (s *PeopleService) UpdateProfessor(ctx context.Context, actorID, id string, nome, titulacao, departamento *string, ativo *bool) (*domain.Professor, error) {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nome != nil {
		professor.Name = *nome
	}
	if titulacao != nil {
		professor.Titulacao = *titulacao
	}
	if departamento != nil {
		professor.Departamento = *departamento
	}
	if ativo != nil {
		professor.Active = *ativo
	}
	if err := s.professors.Update(ctx, professor); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityUpdated, actorID, "professores", professor.ID)
	return professor, nil
}

// DeleteProfessor removes the profile and its account in one transaction.
// Records still referencing the professor make the delete fail.
func (s *PeopleService) DeleteProfessor(ctx context.Context, actorID, id string) error {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.professors.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := s.users.WithTx(tx).Delete(ctx, professor.UserID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.permCache.Invalidate(ctx, professor.UserID)
	s.publish(ctx, events.EventEntityDeleted, actorID, "professores", id)
	return nil
}

// CreateStaff creates the staff profile and its linked account atomically.
func (s *PeopleService) CreateStaff(ctx context.Context, actorID string, input StaffCreateInput) (*domain.StaffMember, error) {
	hash, err := auth.HashPassword(input.Senha, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	user := &domain.User{Email: input.Email, PasswordHash: hash, Role: domain.RoleFuncionario, Active: true}
	if err := s.users.WithTx(tx).Create(ctx, user); err != nil {
		return nil, err
	}

	staff := &domain.StaffMember{
		UserID:    user.ID,
		Name:      input.Nome,
		Matricula: input.Matricula,
		Cargo:     input.Cargo,
		Setor:     input.Setor,
		Active:    true,
	}
	if err := s.staff.WithTx(tx).Create(ctx, staff); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEntityCreated, actorID, "funcionarios", staff.ID)
	return staff, nil
}

// ListStaff returns a page of staff profiles.
func (s *PeopleService) ListStaff(ctx context.Context, limit, offset int) ([]domain.StaffMember, error) {
	return s.staff.List(ctx, limit, offset)
}

// GetStaff loads one staff member.
func (s *PeopleService) GetStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	return s.staff.GetByID(ctx, id)
}

// UpdateStaff applies the present fields to a profile.
func (s *PeopleService) UpdateStaff(ctx context.Context, actorID, id string, nome, cargo, setor *string, ativo *bool) (*domain.StaffMember, error) {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if nome != nil {
		staff.Name = *nome
	}
	if cargo != nil {
		staff.Cargo = *cargo
	}
	if setor != nil {
		staff.Setor = *setor
	}
	if ativo != nil {
		staff.Active = *ativo
	}
	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventEntityUpdated, actorID, "funcionarios", staff.ID)
	return staff, nil
}

// DeleteStaff removes the profile and its account in one transaction.
func (s *PeopleService) DeleteStaff(ctx context.Context, actorID, id string) error {
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.staff.WithTx(tx).Delete(ctx, id); err != nil {
		return err
	}
	if err := s.users.WithTx(tx).Delete(ctx, staff.UserID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.permCache.Invalidate(ctx, staff.UserID)
	s.publish(ctx, events.EventEntityDeleted, actorID, "funcionarios", id)
	return nil
}

func (s *PeopleService) publish(ctx context.Context, eventType events.EventType, actorID, resource, resourceID string) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Resource:   resource,
		ResourceID: resourceID,
		ActorID:    actorID,
		Timestamp:  time.Now(),
	})
}
