package catalog

import (
	"context"
	"reflect"
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

// ListQuery pages and searches authors, tags or series by name.
type ListQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
	Search string `query:"q"`
}

// AuthorRequest is the payload of the admin author procedures.
type AuthorRequest struct {
	Name string `json:"name" validate:"required,max=255"`
	Slug string `json:"slug" validate:"omitempty,max=255"`
	Bio  string `json:"bio"`
}

// TagRequest is the payload of the admin tag procedures.
type TagRequest struct {
	Name string `json:"name" validate:"required,max=80"`
	Slug string `json:"slug" validate:"omitempty,max=100"`
}

// SeriesRequest is the payload of the admin series procedures.
type SeriesRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"omitempty,max=255"`
	Description string `json:"description"`
}

// Service handles authors, tags and series.
type Service struct {
	db        *gorm.DB
	validator *validation.Validator
	paging    pagination.Config
	logger    *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, paging pagination.Config, logger *zap.Logger) *Service {
	return &Service{
		db:        db,
		validator: validation.New(),
		paging:    paging,
		logger:    logger,
	}
}

// Authors

// ListAuthors returns a page of authors ordered by name, optionally filtered by a name search.
func (s *Service) ListAuthors(ctx context.Context, q ListQuery) (pagination.Page[models.Author], error) {
	return listPage[models.Author](ctx, s.db, s.paging, q)
}

// GetAuthor returns an author by id or slug.
func (s *Service) GetAuthor(ctx context.Context, idOrSlug string) (*models.Author, error) {
	return getOne[models.Author](ctx, s.db, idOrSlug, "author")
}

// CreateAuthor inserts an author with a unique slug derived from the name unless one is given.
func (s *Service) CreateAuthor(ctx context.Context, actor *session.Actor, req AuthorRequest) (*models.Author, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	a := models.Author{Name: req.Name, Slug: slugOf(req.Slug, req.Name), Bio: req.Bio, CreatedByID: actor.ID}
	if err := s.create(ctx, &a, a.Slug, "author"); err != nil {
		return nil, err
	}
	s.logger.Info("Author created", zap.String("author_id", a.ID))
	return &a, nil
}

// UpdateAuthor rewrites an author.
func (s *Service) UpdateAuthor(ctx context.Context, id string, req AuthorRequest) (*models.Author, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	var a models.Author
	err := s.update(ctx, &a, id, "author", func() string {
		a.Name = req.Name
		a.Slug = slugOf(req.Slug, req.Name)
		a.Bio = req.Bio
		return a.Slug
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Author updated", zap.String("author_id", id))
	return &a, nil
}

// DeleteAuthor removes an author that no book references.
func (s *Service) DeleteAuthor(ctx context.Context, id string) error {
	return s.delete(ctx, &models.Author{}, id, "author", &models.BookAuthor{}, "author_id")
}

// Tags

// ListTags returns a page of tags ordered by name.
func (s *Service) ListTags(ctx context.Context, q ListQuery) (pagination.Page[models.Tag], error) {
	return listPage[models.Tag](ctx, s.db, s.paging, q)
}

// GetTag returns a tag by id or slug.
func (s *Service) GetTag(ctx context.Context, idOrSlug string) (*models.Tag, error) {
	return getOne[models.Tag](ctx, s.db, idOrSlug, "tag")
}

// CreateTag inserts a tag.
func (s *Service) CreateTag(ctx context.Context, actor *session.Actor, req TagRequest) (*models.Tag, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	t := models.Tag{Name: req.Name, Slug: slugOf(req.Slug, req.Name), CreatedByID: actor.ID}
	if err := s.create(ctx, &t, t.Slug, "tag"); err != nil {
		return nil, err
	}
	s.logger.Info("Tag created", zap.String("tag_id", t.ID))
	return &t, nil
}

// UpdateTag rewrites a tag.
func (s *Service) UpdateTag(ctx context.Context, id string, req TagRequest) (*models.Tag, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	var t models.Tag
	err := s.update(ctx, &t, id, "tag", func() string {
		t.Name = req.Name
		t.Slug = slugOf(req.Slug, req.Name)
		return t.Slug
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Tag updated", zap.String("tag_id", id))
	return &t, nil
}

// DeleteTag removes a tag that no book references.
func (s *Service) DeleteTag(ctx context.Context, id string) error {
	return s.delete(ctx, &models.Tag{}, id, "tag", &models.BookTag{}, "tag_id")
}

// Series

// ListSeries returns a page of series ordered by name.
func (s *Service) ListSeries(ctx context.Context, q ListQuery) (pagination.Page[models.Series], error) {
	return listPage[models.Series](ctx, s.db, s.paging, q)
}

// GetSeries returns a series by id or slug.
func (s *Service) GetSeries(ctx context.Context, idOrSlug string) (*models.Series, error) {
	return getOne[models.Series](ctx, s.db, idOrSlug, "series")
}

// CreateSeries inserts a series.
func (s *Service) CreateSeries(ctx context.Context, actor *session.Actor, req SeriesRequest) (*models.Series, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	sr := models.Series{Name: req.Name, Slug: slugOf(req.Slug, req.Name), Description: req.Description, CreatedByID: actor.ID}
	if err := s.create(ctx, &sr, sr.Slug, "series"); err != nil {
		return nil, err
	}
	s.logger.Info("Series created", zap.String("series_id", sr.ID))
	return &sr, nil
}

// UpdateSeries rewrites a series.
func (s *Service) UpdateSeries(ctx context.Context, id string, req SeriesRequest) (*models.Series, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	var sr models.Series
	err := s.update(ctx, &sr, id, "series", func() string {
		sr.Name = req.Name
		sr.Slug = slugOf(req.Slug, req.Name)
		sr.Description = req.Description
		return sr.Slug
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Series updated", zap.String("series_id", id))
	return &sr, nil
}

// DeleteSeries removes a series that no book references.
func (s *Service) DeleteSeries(ctx context.Context, id string) error {
	return s.delete(ctx, &models.Series{}, id, "series", &models.BookSeries{}, "series_id")
}

// Shared persistence.

func (s *Service) create(ctx context.Context, model any, slug, entity string) error {
	if slug == "" {
		return apperror.Validationf("%s name must contain letters or digits", entity)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := slugFree(tx, model, slug, ""); err != nil {
			return err
		}
		return apperror.FromDB(tx.Create(model).Error, entity)
	})
}

// update loads model by id, lets apply mutate it and saves it. apply returns the new slug.
func (s *Service) update(ctx context.Context, model any, id, entity string, apply func() string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(model).Error; err != nil {
			return apperror.FromDB(err, entity)
		}
		slug := apply()
		if slug == "" {
			return apperror.Validationf("%s name must contain letters or digits", entity)
		}
		if err := slugFree(tx, model, slug, id); err != nil {
			return err
		}
		return apperror.FromDB(tx.Save(model).Error, entity)
	})
}

// delete removes an entity that no book references.
func (s *Service) delete(ctx context.Context, model any, id, entity string, join any, column string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(model).Error; err != nil {
			return apperror.FromDB(err, entity)
		}

		var linked int64
		if err := tx.Model(join).Where(column+" = ?", id).Count(&linked).Error; err != nil {
			return apperror.FromDB(err, entity)
		}
		if linked > 0 {
			return apperror.Validationf("%s is linked to %d books", entity, linked)
		}
		return apperror.FromDB(tx.Delete(model).Error, entity)
	})
	if err != nil {
		return err
	}
	s.logger.Info("Catalog entry deleted", zap.String("entity", entity), zap.String("id", id))
	return nil
}

func listPage[M any](ctx context.Context, db *gorm.DB, paging pagination.Config, q ListQuery) (pagination.Page[M], error) {
	params := pagination.Params{Page: q.Page, Limit: q.Limit, Cursor: q.Cursor}
	if err := params.Normalize(paging); err != nil {
		return pagination.Page[M]{}, apperror.Validationf("%s", err.Error())
	}

	query := db.WithContext(ctx).Model(new(M))
	if search := strings.TrimSpace(q.Search); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[M]{}, apperror.FromDB(err, "catalog")
	}

	var items []M
	if err := base.Order("name, id").Limit(params.Limit).Offset(params.Offset()).Find(&items).Error; err != nil {
		return pagination.Page[M]{}, apperror.FromDB(err, "catalog")
	}
	return pagination.NewPage(items, params, total), nil
}

func getOne[M any](ctx context.Context, db *gorm.DB, idOrSlug, entity string) (*M, error) {
	item := new(M)
	if err := db.WithContext(ctx).Where("id = ? OR slug = ?", idOrSlug, idOrSlug).First(item).Error; err != nil {
		return nil, apperror.FromDB(err, entity)
	}
	return item, nil
}

func slugFree(tx *gorm.DB, model any, slug, excludeID string) error {
	// A fresh value keeps the loaded primary key out of the query.
	zero := reflect.New(reflect.Indirect(reflect.ValueOf(model)).Type()).Interface()

	var count int64
	q := tx.Model(zero).Where("slug = ?", slug)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return apperror.FromDB(err, "slug")
	}
	if count > 0 {
		return apperror.Unprocessablef("slug %q is already in use", slug).WithDetails(map[string]string{"slug": "already exists"})
	}
	return nil
}

func slugOf(slug, name string) string {
	if slug != "" {
		return utils.Slugify(slug)
	}
	return utils.Slugify(name)
}
