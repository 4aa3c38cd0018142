package organizations

import (
	"context"
	"strings"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/core/utils"
	"bookstore/core/validation"
	"bookstore/feature/bookstore/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrganizationRequest is the payload of organization create and update.
type OrganizationRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Slug    string `json:"slug" validate:"omitempty,max=255"`
	Kind    string `json:"kind" validate:"required,oneof=publisher distributor other"`
	Website string `json:"website" validate:"omitempty,url,max=255"`
}

// ContactRequest is the payload of contact create and update.
type ContactRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"omitempty,email,max=255"`
	Phone string `json:"phone" validate:"max=40"`
	Role  string `json:"role" validate:"max=80"`
}

// ListQuery filters organizations.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
	Search string `query:"q"`
	Kind   string `query:"kind"`
}

// Service handles organizations and their contacts.
type Service struct {
	db        *gorm.DB
	validator *validation.Validator
	paging    pagination.Config
	logger    *zap.Logger
}

// NewService creates a new organization service.
func NewService(db *gorm.DB, paging pagination.Config, logger *zap.Logger) *Service {
	return &Service{db: db, validator: validation.New(), paging: paging, logger: logger}
}

// List returns a page of organizations without contacts.
func (s *Service) List(ctx context.Context, q ListQuery) (pagination.Page[models.Organization], error) {
	params := pagination.Params{Page: q.Page, Limit: q.Limit, Cursor: q.Cursor}
	if err := params.Normalize(s.paging); err != nil {
		return pagination.Page[models.Organization]{}, apperror.Validationf("%s", err.Error())
	}

	query := s.db.WithContext(ctx).Model(&models.Organization{})
	if search := strings.TrimSpace(q.Search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if q.Kind != "" {
		query = query.Where("kind = ?", q.Kind)
	}
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[models.Organization]{}, apperror.FromDB(err, "organization")
	}
	var orgs []models.Organization
	if err := base.Order("name, id").Limit(params.Limit).Offset(params.Offset()).Find(&orgs).Error; err != nil {
		return pagination.Page[models.Organization]{}, apperror.FromDB(err, "organization")
	}
	return pagination.NewPage(orgs, params, total), nil
}

// Get returns an organization with its contacts.
func (s *Service) Get(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	err := s.db.WithContext(ctx).
		Preload("Contacts", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Where("id = ? OR slug = ?", id, id).
		First(&org).Error
	if err != nil {
		return nil, apperror.FromDB(err, "organization")
	}
	return &org, nil
}

// Create inserts an organization.
func (s *Service) Create(ctx context.Context, actor *session.Actor, req OrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	org := models.Organization{
		Name:        req.Name,
		Slug:        slugOf(req),
		Kind:        req.Kind,
		Website:     req.Website,
		CreatedByID: actor.ID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := slugFree(tx, org.Slug, ""); err != nil {
			return err
		}
		return apperror.FromDB(tx.Create(&org).Error, "organization")
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Organization created", zap.String("organization_id", org.ID))
	return &org, nil
}

// Update rewrites an organization.
func (s *Service) Update(ctx context.Context, id string, req OrganizationRequest) (*models.Organization, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	var org models.Organization
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&org).Error; err != nil {
			return apperror.FromDB(err, "organization")
		}
		org.Name = req.Name
		org.Slug = slugOf(req)
		org.Kind = req.Kind
		org.Website = req.Website
		if err := slugFree(tx, org.Slug, org.ID); err != nil {
			return err
		}
		return apperror.FromDB(tx.Save(&org).Error, "organization")
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Organization updated", zap.String("organization_id", id))
	return &org, nil
}

// Delete removes an organization and its contacts. Publishers of books are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.Where("id = ?", id).First(&org).Error; err != nil {
			return apperror.FromDB(err, "organization")
		}

		var published int64
		if err := tx.Model(&models.Book{}).Where("publisher_id = ?", id).Count(&published).Error; err != nil {
			return apperror.FromDB(err, "organization")
		}
		if published > 0 {
			return apperror.Validationf("organization is the publisher of %d books", published)
		}

		if err := tx.Where("organization_id = ?", id).Delete(&models.Contact{}).Error; err != nil {
			return apperror.FromDB(err, "contact")
		}
		return apperror.FromDB(tx.Delete(&org).Error, "organization")
	})
	if err != nil {
		return err
	}
	s.logger.Info("Organization deleted", zap.String("organization_id", id))
	return nil
}

// AddContact creates a contact under an organization.
func (s *Service) AddContact(ctx context.Context, orgID string, req ContactRequest) (*models.Contact, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	contact := models.Contact{OrganizationID: orgID, Name: req.Name, Email: req.Email, Phone: req.Phone, Role: req.Role}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").Where("id = ?", orgID).First(&models.Organization{}).Error; err != nil {
			return apperror.FromDB(err, "organization")
		}
		return apperror.FromDB(tx.Create(&contact).Error, "contact")
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Contact added", zap.String("organization_id", orgID), zap.String("contact_id", contact.ID))
	return &contact, nil
}

// UpdateContact rewrites a contact of an organization.
func (s *Service) UpdateContact(ctx context.Context, orgID, contactID string, req ContactRequest) (*models.Contact, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	var contact models.Contact
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND organization_id = ?", contactID, orgID).First(&contact).Error; err != nil {
			return apperror.FromDB(err, "contact")
		}
		contact.Name = req.Name
		contact.Email = req.Email
		contact.Phone = req.Phone
		contact.Role = req.Role
		return apperror.FromDB(tx.Save(&contact).Error, "contact")
	})
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// RemoveContact deletes a contact of an organization.
func (s *Service) RemoveContact(ctx context.Context, orgID, contactID string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND organization_id = ?", contactID, orgID).Delete(&models.Contact{})
	if res.Error != nil {
		return apperror.FromDB(res.Error, "contact")
	}
	if res.RowsAffected == 0 {
		return apperror.NotFoundf("contact not found")
	}
	s.logger.Info("Contact removed", zap.String("organization_id", orgID), zap.String("contact_id", contactID))
	return nil
}

func slugFree(tx *gorm.DB, slug, excludeID string) error {
	if slug == "" {
		return apperror.Validationf("organization name must contain letters or digits")
	}
	var count int64
	q := tx.Model(&models.Organization{}).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return apperror.FromDB(err, "organization")
	}
	if count > 0 {
		return apperror.Unprocessablef("slug %q is already in use", slug).WithDetails(map[string]string{"slug": "already exists"})
	}
	return nil
}

func slugOf(req OrganizationRequest) string {
	if req.Slug != "" {
		return utils.Slugify(req.Slug)
	}
	return utils.Slugify(req.Name)
}
