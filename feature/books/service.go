package books

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bookstore/core/apperror"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/core/reconcile"
	"bookstore/core/storage"
	"bookstore/core/utils"
	"bookstore/core/validation"
	"bookstore/feature/bookstore/models"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const slugSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// maxSlugAttempts bounds the numbered suffixes tried before a random one.
const maxSlugAttempts = 20

// CategoryScope resolves a category slug to the ids of the category and all
// of its descendants.
type CategoryScope interface {
	SubtreeIDs(ctx context.Context, slug string) ([]string, error)
}

// Service handles book operations.
type Service struct {
	db         *gorm.DB
	client     storage.Client
	bucket     string
	assembler  *Assembler
	categories CategoryScope
	validator  *validation.Validator
	paging     pagination.Config
	logger     *zap.Logger
}

// NewService creates a new book service. client may be nil when object storage
// is not configured; image objects are then left in place on removal.
func NewService(db *gorm.DB, client storage.Client, storageCfg storage.Config, categories CategoryScope, paging pagination.Config, logger *zap.Logger) *Service {
	return &Service{
		db:         db,
		client:     client,
		bucket:     storageCfg.Bucket,
		assembler:  NewAssembler(storageCfg.PublicBaseURL),
		categories: categories,
		validator:  validation.New(),
		paging:     paging,
		logger:     logger,
	}
}

// Get returns the preview of a book by id or slug.
func (s *Service) Get(ctx context.Context, idOrSlug string) (*BookPreview, error) {
	preview, err := s.assembler.Preview(ctx, s.db, idOrSlug)
	if err != nil {
		return nil, apperror.FromDB(err, "book")
	}
	if preview == nil {
		return nil, apperror.NotFoundf("book not found")
	}
	return preview, nil
}

// Create inserts a book with its relations, variants and images in one transaction.
// Every submitted relation is created regardless of its mode.
func (s *Service) Create(ctx context.Context, actor *session.Actor, req BookRequest) (*BookPreview, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}
	req = asNew(req)

	var bookID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slug, err := s.resolveSlug(ctx, tx, req.Slug, req.Title, "")
		if err != nil {
			return err
		}

		book := models.Book{
			Title:       req.Title,
			Slug:        slug,
			ISBN:        req.ISBN,
			Description: req.Description,
			Language:    req.Language,
			PublisherID: req.PublisherID,
			PublishedAt: req.PublishedAt,
			CreatedByID: actor.ID,
		}
		if err := s.requireRelated(ctx, tx, req); err != nil {
			return err
		}
		if err := tx.Create(&book).Error; err != nil {
			return apperror.FromDB(err, "book")
		}
		bookID = book.ID

		_, err = s.applyRelations(ctx, tx, book.ID, actor.ID, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Book created", zap.String("book_id", bookID), zap.String("actor_id", actor.ID))
	return s.Get(ctx, bookID)
}

// Update writes the scalar fields of a book and reconciles every relation kind
// against the submitted sets. All changes commit or roll back together.
func (s *Service) Update(ctx context.Context, actor *session.Actor, bookID string, req BookRequest) (*BookPreview, error) {
	if err := s.validator.Validate(&req); err != nil {
		return nil, err
	}

	var removedKeys []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Where("id = ?", bookID).First(&book).Error; err != nil {
			return apperror.FromDB(err, "book")
		}

		slug := book.Slug
		if req.Slug != "" && utils.Slugify(req.Slug) != book.Slug {
			var err error
			if slug, err = s.resolveSlug(ctx, tx, req.Slug, req.Title, book.ID); err != nil {
				return err
			}
		}

		if err := s.requireRelated(ctx, tx, req); err != nil {
			return err
		}

		err := tx.Model(&book).Updates(map[string]any{
			"title":        req.Title,
			"slug":         slug,
			"isbn":         req.ISBN,
			"description":  req.Description,
			"language":     req.Language,
			"publisher_id": req.PublisherID,
			"published_at": req.PublishedAt,
		}).Error
		if err != nil {
			return apperror.FromDB(err, "book")
		}

		removedKeys, err = s.applyRelations(ctx, tx, book.ID, actor.ID, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Book updated", zap.String("book_id", bookID), zap.String("actor_id", actor.ID))
	s.removeObjects(ctx, bookID, removedKeys)
	return s.Get(ctx, bookID)
}

// Delete removes a book with its dependent rows, then its image objects.
func (s *Service) Delete(ctx context.Context, bookID string) error {
	var keys []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Where("id = ?", bookID).First(&book).Error; err != nil {
			return apperror.FromDB(err, "book")
		}

		if err := tx.Model(&models.BookImage{}).Where("book_id = ?", bookID).Pluck("object_key", &keys).Error; err != nil {
			return apperror.FromDB(err, "book image")
		}

		variantIDs := tx.Model(&models.BookVariant{}).Select("id").Where("book_id = ?", bookID)
		if err := tx.Where("variant_id IN (?)", variantIDs).Delete(&models.CartItem{}).Error; err != nil {
			return apperror.FromDB(err, "cart item")
		}

		dependents := []any{
			&models.WishlistItem{},
			&models.Review{},
			&models.BookAuthor{},
			&models.BookCategory{},
			&models.BookTag{},
			&models.BookSeries{},
			&models.BookImage{},
			&models.BookVariant{},
		}
		for _, m := range dependents {
			if err := tx.Where("book_id = ?", bookID).Delete(m).Error; err != nil {
				return apperror.FromDB(err, "book")
			}
		}

		return apperror.FromDB(tx.Delete(&book).Error, "book")
	})
	if err != nil {
		return err
	}

	s.logger.Info("Book deleted", zap.String("book_id", bookID), zap.Int("images", len(keys)))
	s.removeObjects(ctx, bookID, keys)
	return nil
}

// List returns a page of book summaries.
func (s *Service) List(ctx context.Context, q ListQuery) (pagination.Page[BookSummary], error) {
	if err := s.validator.Validate(&q); err != nil {
		return pagination.Page[BookSummary]{}, err
	}
	params := q.Params()
	if err := params.Normalize(s.paging); err != nil {
		return pagination.Page[BookSummary]{}, apperror.Validationf("%s", err.Error())
	}

	query, err := s.filter(ctx, q)
	if err != nil {
		return pagination.Page[BookSummary]{}, err
	}
	base := query.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return pagination.Page[BookSummary]{}, apperror.FromDB(err, "book")
	}

	var rows []models.Book
	err = base.
		Preload("Authors.Author").
		Preload("Variants").
		Preload("Images").
		Order(orderFor(q.Sort)).
		Limit(params.Limit).
		Offset(params.Offset()).
		Find(&rows).Error
	if err != nil {
		return pagination.Page[BookSummary]{}, apperror.FromDB(err, "book")
	}

	summaries := make([]BookSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, s.assembler.Summarize(&rows[i]))
	}
	return pagination.NewPage(summaries, params, total), nil
}

func (s *Service) filter(ctx context.Context, q ListQuery) (*gorm.DB, error) {
	query := s.db.WithContext(ctx).Model(&models.Book{})

	if q.Category != "" {
		ids, err := s.categoryIDs(ctx, q.Category)
		if err != nil {
			return nil, err
		}
		query = query.Where("books.id IN (?)", s.db.Model(&models.BookCategory{}).Select("book_id").Where("category_id IN ?", ids))
	}
	if q.AuthorID != "" {
		query = query.Where("books.id IN (?)", s.db.Model(&models.BookAuthor{}).Select("book_id").Where("author_id = ?", q.AuthorID))
	}
	if q.Tag != "" {
		sub := s.db.Table("book_tags").Select("book_tags.book_id").Joins("JOIN tags ON tags.id = book_tags.tag_id").Where("tags.slug = ?", q.Tag)
		query = query.Where("books.id IN (?)", sub)
	}
	if q.SeriesID != "" {
		query = query.Where("books.id IN (?)", s.db.Model(&models.BookSeries{}).Select("book_id").Where("series_id = ?", q.SeriesID))
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(books.title) LIKE ? OR books.isbn LIKE ?", like, like)
	}
	if q.InStock {
		query = query.Where("books.id IN (?)", s.db.Model(&models.BookVariant{}).Select("book_id").Where("stock > 0"))
	}

	return query, nil
}

func (s *Service) categoryIDs(ctx context.Context, slug string) ([]string, error) {
	if s.categories != nil {
		return s.categories.SubtreeIDs(ctx, slug)
	}
	var ids []string
	err := s.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug).Pluck("id", &ids).Error
	return ids, apperror.FromDB(err, "category")
}

func orderFor(sortKey string) string {
	const minPrice = "(SELECT MIN(COALESCE(sale_price, price)) FROM book_variants WHERE book_variants.book_id = books.id)"
	switch sortKey {
	case SortTitle:
		return "books.title ASC, books.id"
	case SortPrice:
		return minPrice + " ASC, books.id"
	case SortPriceDesc:
		return minPrice + " DESC, books.id"
	default:
		return "books.created_at DESC, books.id"
	}
}

// applyRelations reconciles every relation kind in tx and returns the object
// keys of removed images.
func (s *Service) applyRelations(ctx context.Context, tx *gorm.DB, bookID, actorID string, req BookRequest) ([]string, error) {
	l := s.logger.With(zap.String("book_id", bookID))

	if err := reconcileKind(ctx, tx, l, authorAdapter(), bookID, actorID, refItems(req.Authors)); err != nil {
		return nil, err
	}
	if err := reconcileKind(ctx, tx, l, categoryAdapter(), bookID, actorID, refItems(req.Categories)); err != nil {
		return nil, err
	}
	if err := reconcileKind(ctx, tx, l, tagAdapter(), bookID, actorID, refItems(req.Tags)); err != nil {
		return nil, err
	}
	if err := reconcileKind[SeriesExtra](ctx, tx, l, newSeriesAdapter(), bookID, actorID, seriesItems(req.Series)); err != nil {
		return nil, err
	}
	if err := reconcileKind[VariantExtra](ctx, tx, l, variantAdapter{}, bookID, actorID, variantItems(req.Variants)); err != nil {
		return nil, err
	}

	images := &imageAdapter{}
	if err := reconcileKind[ImageExtra](ctx, tx, l, images, bookID, actorID, imageItems(req.Images)); err != nil {
		return nil, err
	}
	return images.removedKeys, nil
}

func reconcileKind[T any](
	ctx context.Context,
	tx *gorm.DB,
	l *zap.Logger,
	adapter reconcile.Adapter[T],
	bookID, actorID string,
	items []reconcile.Item[T],
) error {
	plan, err := reconcile.Reconcile(ctx, tx, adapter, bookID, actorID, items)
	if err != nil {
		return apperror.FromDB(err, "book "+string(adapter.Kind()))
	}
	l.Debug("Relations reconciled", zap.String("kind", string(plan.Kind)), zap.Any("summary", plan.Summary))
	return nil
}

// requireRelated checks that every referenced entity exists.
func (s *Service) requireRelated(ctx context.Context, tx *gorm.DB, req BookRequest) error {
	checks := []struct {
		model  any
		entity string
		ids    []string
	}{
		{&models.Author{}, "author", refIDs(req.Authors)},
		{&models.Category{}, "category", refIDs(req.Categories)},
		{&models.Tag{}, "tag", refIDs(req.Tags)},
		{&models.Series{}, "series", seriesIDs(req.Series)},
	}
	if req.PublisherID != nil {
		checks = append(checks, struct {
			model  any
			entity string
			ids    []string
		}{&models.Organization{}, "publisher", []string{*req.PublisherID}})
	}

	for _, c := range checks {
		if err := requireExisting(ctx, tx, c.model, c.entity, c.ids); err != nil {
			return err
		}
	}
	return nil
}

func requireExisting(ctx context.Context, tx *gorm.DB, model any, entity string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	var found []string
	if err := tx.WithContext(ctx).Model(model).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return apperror.FromDB(err, entity)
	}

	known := make(map[string]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return apperror.NotFoundf("%s not found: %s", entity, strings.Join(missing, ", "))
	}
	return nil
}

// resolveSlug returns the slug for a book. An explicit slug must be free; a
// slug derived from the title gets a numbered suffix on collision.
func (s *Service) resolveSlug(ctx context.Context, tx *gorm.DB, requested, title, excludeID string) (string, error) {
	if requested != "" {
		slug := utils.Slugify(requested)
		if slug == "" {
			return "", apperror.Validationf("slug must contain letters or digits")
		}
		taken, err := slugTaken(ctx, tx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if taken {
			return "", apperror.Unprocessablef("slug %q is already in use", slug)
		}
		return slug, nil
	}

	base := utils.Slugify(title)
	if base == "" {
		base = "book"
	}
	slug := base
	for i := 2; i <= maxSlugAttempts; i++ {
		taken, err := slugTaken(ctx, tx, slug, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}

	suffix, err := gonanoid.Generate(slugSuffixAlphabet, 8)
	if err != nil {
		return "", apperror.Internal(err, "failed to generate slug")
	}
	return base + "-" + suffix, nil
}

func slugTaken(ctx context.Context, tx *gorm.DB, slug, excludeID string) (bool, error) {
	var count int64
	query := tx.WithContext(ctx).Model(&models.Book{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, apperror.FromDB(err, "book")
	}
	return count > 0, nil
}

func (s *Service) removeObjects(ctx context.Context, bookID string, keys []string) {
	if s.client == nil || len(keys) == 0 {
		return
	}
	if err := storage.RemoveKeys(ctx, s.client, s.bucket, keys); err != nil {
		s.logger.Warn("Failed to remove book images from storage",
			zap.String("book_id", bookID),
			zap.Strings("keys", keys),
			zap.Error(err),
		)
	}
}

// asNew marks every submitted item of a new book as a create.
func asNew(req BookRequest) BookRequest {
	out := req
	out.Authors = withMode(req.Authors)
	out.Categories = withMode(req.Categories)
	out.Tags = withMode(req.Tags)

	out.Series = make([]SeriesRef, len(req.Series))
	for i, r := range req.Series {
		r.Mode = string(reconcile.ModeCreate)
		out.Series[i] = r
	}
	out.Variants = make([]VariantInput, len(req.Variants))
	for i, v := range req.Variants {
		v.Mode = string(reconcile.ModeCreate)
		v.VariantID = ""
		out.Variants[i] = v
	}
	out.Images = make([]ImageInput, len(req.Images))
	for i, img := range req.Images {
		img.Mode = string(reconcile.ModeCreate)
		img.ID = ""
		out.Images[i] = img
	}
	return out
}

func withMode(refs []RelationRef) []RelationRef {
	out := make([]RelationRef, len(refs))
	for i, r := range refs {
		r.Mode = string(reconcile.ModeCreate)
		out[i] = r
	}
	return out
}

func refIDs(refs []RelationRef) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}

func seriesIDs(refs []SeriesRef) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}
