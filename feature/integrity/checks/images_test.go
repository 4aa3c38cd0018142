package checks

import (
	"context"
	"testing"

	"bookstore/core/database"
	"bookstore/core/storage/mocks"
	"bookstore/feature/bookstore/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func objects(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func imageDB(t *testing.T, keys ...string) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	book := models.Book{Title: "Dune", Slug: "dune"}
	require.NoError(t, db.Create(&book).Error)
	for i, k := range keys {
		require.NoError(t, db.Create(&models.BookImage{BookID: book.ID, ObjectKey: k, Position: i}).Error)
	}
	return db
}

func TestCheckImages(t *testing.T) {
	db := imageDB(t, "books/1/cover.jpg", "books/1/back.jpg", "https://cdn.example.com/x.jpg")
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "media").Return(true, nil)
	client.On("ListObjects", mock.Anything, "media", mock.Anything).
		Return(objects("books/", "books/1/cover.jpg", "books/2/stale.jpg"))

	report, err := CheckImages(context.Background(), db, client, "media")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Stored)
	assert.Equal(t, 2, report.Referenced)
	assert.Equal(t, []string{"books/1/back.jpg"}, report.Missing)
	assert.Equal(t, []string{"books/2/stale.jpg"}, report.Orphans)
	client.AssertExpectations(t)
}

func TestCheckImages_MissingBucket(t *testing.T) {
	db := imageDB(t)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "media").Return(false, nil)

	report, err := CheckImages(context.Background(), db, client, "media")
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestPurgeOrphans(t *testing.T) {
	client := new(mocks.Client)
	var removed []string
	client.On("RemoveObjects", mock.Anything, "media", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
				removed = append(removed, obj.Key)
			}
		}).
		Return(nil)

	require.NoError(t, PurgeOrphans(context.Background(), client, "media", zap.NewNop(), []string{"books/2/stale.jpg"}))
	assert.Equal(t, []string{"books/2/stale.jpg"}, removed)

	require.NoError(t, PurgeOrphans(context.Background(), client, "media", zap.NewNop(), nil))
	client.AssertNumberOfCalls(t, "RemoveObjects", 1)
}
