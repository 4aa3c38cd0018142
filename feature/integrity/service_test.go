package integrity

import (
	"context"
	"testing"

	"bookstore/core/apperror"
	"bookstore/feature/bookstore/fixtures"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCheckImages_WithoutStorage(t *testing.T) {
	svc := NewService(fixtures.NewDB(t), nil, "", zap.NewNop())

	report, err := svc.CheckImages(context.Background(), false)
	assert.Nil(t, report)
	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err))
}
