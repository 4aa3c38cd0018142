package users

import (
	"context"
	"strings"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/core/validation"
	"bookstore/feature/bookstore/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserRequest is the payload of user creation.
type UserRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email,max=255"`
	Role  string `json:"role" validate:"omitempty,oneof=customer admin"`
}

// RoleRequest changes the role of a user.
type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer admin"`
}

// ListQuery filters users.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
	Search string `query:"q"`
	Role   string `query:"role"`
}

// Service manages users and resolves session actors.
type Service struct {
	db        *gorm.DB
	validator *validation.Validator
	paging    pagination.Config
	logger    *zap.Logger
}

// NewService creates a new user service.
func NewService(db *gorm.DB, paging pagination.Config, logger *zap.Logger) *Service {
	return &Service{db: db, validator: validation.New(), paging: paging, logger: logger}
}

// ResolveActor loads the user behind a session header.
func (s *Service) ResolveActor(ctx context.Context, userID string) (*session.Actor, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &session.Actor{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, apperror.FromDB(err, "user")
	}
	return &user, nil
}

// List returns a page of users.
func (s *Service) List(ctx context.Context, q ListQuery) (pagination.Page[models.User], error) {
	params := pagination.Params{Page: q.Page, Limit: q.Limit, Cursor: q.Cursor}
	if err := params.Normalize(s.paging); err != nil {
		return pagination.Page[models.User]{}, apperror.Validationf("%s", err.Error())
	}

	query := s.db.WithContext(ctx).Model(&models.User{})
	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if q.Role != "" {
		query = query.Where("role = ?", q.Role)
	}
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[models.User]{}, apperror.FromDB(err, "user")
	}
	var users []models.User
	if err := base.Order("email").Limit(params.Limit).Offset(params.Offset()).Find(&users).Error; err != nil {
		return pagination.Page[models.User]{}, apperror.FromDB(err, "user")
	}
	return pagination.NewPage(users, params, total), nil
}

// Create registers a user. Emails are stored lower case.
func (s *Service) Create(ctx context.Context, req UserRequest) (*models.User, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	user := models.User{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Role:  req.Role,
	}
	if user.Role == "" {
		user.Role = models.RoleCustomer
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return apperror.FromDB(err, "user")
		}
		if count > 0 {
			return apperror.Unprocessablef("a user with this email already exists").
				WithDetails(map[string]string{"email": "already exists"})
		}
		return apperror.FromDB(tx.Create(&user).Error, "user")
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("User created", zap.String("user_id", user.ID), zap.String("role", user.Role))
	return &user, nil
}

// SetRole changes the role of a user. An admin cannot demote themselves.
func (s *Service) SetRole(ctx context.Context, actor *session.Actor, id string, req RoleRequest) (*models.User, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	if actor != nil && actor.ID == id && req.Role != models.RoleAdmin {
		return nil, apperror.Validationf("admins cannot demote themselves")
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("role", req.Role).Error; err != nil {
		return nil, apperror.FromDB(err, "user")
	}
	user.Role = req.Role
	s.logger.Info("User role changed", zap.String("user_id", id), zap.String("role", req.Role))
	return user, nil
}
