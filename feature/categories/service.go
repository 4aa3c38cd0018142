package categories

import (
	"context"
	"time"

	"bookstore/core/apperror"
	"bookstore/core/cache"
	"bookstore/core/middleware/session"
	"bookstore/core/utils"
	"bookstore/core/validation"
	"bookstore/feature/bookstore/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxAncestors bounds the parent walk of the cycle check.
const maxAncestors = 64

// CategoryRequest is the payload of the admin create and update procedures.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Code        string  `json:"code" validate:"required,max=64"`
	Slug        string  `json:"slug" validate:"omitempty,max=160"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
	Position    int     `json:"position" validate:"gte=0"`
}

// Service handles category operations.
type Service struct {
	db        *gorm.DB
	tree      *cache.Value[[]*Node]
	validator *validation.Validator
	logger    *zap.Logger
}

// NewService creates a new category service.
func NewService(db *gorm.DB, cacheCfg cache.Config, logger *zap.Logger) *Service {
	s := &Service{
		db:        db,
		validator: validation.New(),
		logger:    logger,
	}
	ttl := time.Duration(cacheCfg.CategoryTreeTTLSeconds) * time.Second
	s.tree = cache.NewValue(ttl, s.buildTree)
	return s
}

func (s *Service) buildTree(ctx context.Context) ([]*Node, error) {
	flat, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Category tree rebuilt", zap.Int("categories", len(flat)))
	return BuildTree(flat), nil
}

// List returns every category ordered by position and name.
func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	var flat []models.Category
	if err := s.db.WithContext(ctx).Order("position, name").Find(&flat).Error; err != nil {
		return nil, apperror.FromDB(err, "category")
	}
	return flat, nil
}

// Tree returns the cached category hierarchy. Callers must not modify it.
func (s *Service) Tree(ctx context.Context) ([]*Node, error) {
	return s.tree.Get(ctx)
}

// Get returns a category by id or slug.
func (s *Service) Get(ctx context.Context, idOrSlug string) (*models.Category, error) {
	var c models.Category
	if err := s.db.WithContext(ctx).Where("id = ? OR slug = ?", idOrSlug, idOrSlug).First(&c).Error; err != nil {
		return nil, apperror.FromDB(err, "category")
	}
	return &c, nil
}

// SubtreeIDs returns the ids of the category with the given slug (or id) and of
// all its descendants.
func (s *Service) SubtreeIDs(ctx context.Context, slug string) ([]string, error) {
	roots, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	node := Find(roots, slug)
	if node == nil {
		return nil, apperror.NotFoundf("category not found")
	}
	return Subtree(node), nil
}

// Descendants returns the ids of all categories below id, excluding id.
func (s *Service) Descendants(ctx context.Context, id string) ([]string, error) {
	ids, err := s.SubtreeIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return ids[1:], nil
}

// Create inserts a category.
func (s *Service) Create(ctx context.Context, actor *session.Actor, req CategoryRequest) (*models.Category, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	slug, err := slugFor(req)
	if err != nil {
		return nil, err
	}

	c := models.Category{
		Name:        req.Name,
		Code:        req.Code,
		Slug:        slug,
		Description: req.Description,
		ParentID:    emptyToNil(req.ParentID),
		Position:    req.Position,
		CreatedByID: actor.ID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkUnique(tx, &c, ""); err != nil {
			return err
		}
		if err := checkParent(tx, "", c.ParentID); err != nil {
			return err
		}
		return apperror.FromDB(tx.Create(&c).Error, "category")
	})
	if err != nil {
		return nil, err
	}

	s.tree.Invalidate()
	s.logger.Info("Category created", zap.String("category_id", c.ID), zap.String("slug", c.Slug))
	return &c, nil
}

// Update rewrites a category. Moving it below itself or one of its
// descendants is rejected.
func (s *Service) Update(ctx context.Context, id string, req CategoryRequest) (*models.Category, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	slug, err := slugFor(req)
	if err != nil {
		return nil, err
	}

	var c models.Category
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&c).Error; err != nil {
			return apperror.FromDB(err, "category")
		}

		c.Name = req.Name
		c.Code = req.Code
		c.Slug = slug
		c.Description = req.Description
		c.ParentID = emptyToNil(req.ParentID)
		c.Position = req.Position

		if err := checkUnique(tx, &c, c.ID); err != nil {
			return err
		}
		if err := checkParent(tx, c.ID, c.ParentID); err != nil {
			return err
		}
		return apperror.FromDB(tx.Save(&c).Error, "category")
	})
	if err != nil {
		return nil, err
	}

	s.tree.Invalidate()
	s.logger.Info("Category updated", zap.String("category_id", c.ID))
	return &c, nil
}

// Delete removes a leaf category and unlinks it from books.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Category
		if err := tx.Where("id = ?", id).First(&c).Error; err != nil {
			return apperror.FromDB(err, "category")
		}

		var children int64
		if err := tx.Model(&models.Category{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return apperror.FromDB(err, "category")
		}
		if children > 0 {
			return apperror.Validationf("category has %d subcategories, move or delete them first", children)
		}

		if err := tx.Where("category_id = ?", id).Delete(&models.BookCategory{}).Error; err != nil {
			return apperror.FromDB(err, "book category")
		}
		return apperror.FromDB(tx.Delete(&c).Error, "category")
	})
	if err != nil {
		return err
	}

	s.tree.Invalidate()
	s.logger.Info("Category deleted", zap.String("category_id", id))
	return nil
}

// checkUnique reports which unique field of c is already taken.
func checkUnique(tx *gorm.DB, c *models.Category, excludeID string) error {
	fields := []struct {
		column string
		value  string
	}{
		{"name", c.Name},
		{"code", c.Code},
		{"slug", c.Slug},
	}

	for _, f := range fields {
		var count int64
		q := tx.Model(&models.Category{}).Where(f.column+" = ?", f.value)
		if excludeID != "" {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return apperror.FromDB(err, "category")
		}
		if count > 0 {
			return apperror.Unprocessablef("a category with this %s already exists", f.column).
				WithDetails(map[string]string{f.column: "already exists"})
		}
	}
	return nil
}

// checkParent verifies that parentID exists and is not id or one of its descendants.
func checkParent(tx *gorm.DB, id string, parentID *string) error {
	if parentID == nil {
		return nil
	}
	if *parentID == id {
		return apperror.Validationf("a category cannot be its own parent")
	}

	current := *parentID
	for i := 0; i < maxAncestors; i++ {
		var p models.Category
		err := tx.Select("id", "parent_id").Where("id = ?", current).First(&p).Error
		if err != nil {
			if apperror.CodeOf(apperror.FromDB(err, "category")) == apperror.CodeNotFound {
				if current == *parentID {
					return apperror.Validationf("parent category not found")
				}
				return nil
			}
			return apperror.FromDB(err, "category")
		}
		if id != "" && p.ID == id {
			return apperror.Validationf("a category cannot be moved below its own descendant")
		}
		if p.ParentID == nil {
			return nil
		}
		current = *p.ParentID
	}
	return apperror.Validationf("category hierarchy is too deep")
}

func slugFor(req CategoryRequest) (string, error) {
	source := req.Name
	if req.Slug != "" {
		source = req.Slug
	}
	slug := utils.Slugify(source)
	if slug == "" {
		return "", apperror.Validationf("category slug must contain letters or digits").
			WithDetails(map[string]string{"slug": "must contain letters or digits"})
	}
	return slug, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
