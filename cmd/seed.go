package cmd

import (
	"context"
	"errors"

	"bookstore/core/apperror"
	"bookstore/core/cache"
	"bookstore/core/middleware/session"
	"bookstore/core/pagination"
	"bookstore/feature/bookstore/models"
	"bookstore/feature/categories"
	"bookstore/feature/users"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	seedAdminEmail string
	seedAdminName  string
)

var rootCategories = []categories.CategoryRequest{
	{Name: "Fiction", Code: "FIC", Position: 0},
	{Name: "Non-Fiction", Code: "NF", Position: 1},
	{Name: "Children", Code: "CHI", Position: 2},
	{Name: "Comics", Code: "COM", Position: 3},
}

// seedCmd inserts the demo admin user and the root categories.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed an admin user and the root categories",
	Long:  `Creates the admin user and the root categories when they do not exist yet. Running it twice is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		if err := migrate(rt.db); err != nil {
			return err
		}
		return seed(cmd.Context(), rt.db, rt.logger, seedAdminName, seedAdminEmail)
	},
}

func seed(ctx context.Context, db *gorm.DB, logg *zap.Logger, name, email string) error {
	userSvc := users.NewService(db, pagination.Config{}, logg)
	admin, err := userSvc.Create(ctx, users.UserRequest{Name: name, Email: email, Role: models.RoleAdmin})
	switch {
	case err == nil:
		logg.Info("Seeded admin user", zap.String("user_id", admin.ID), zap.String("email", admin.Email))
	case errors.Is(err, apperror.ErrUnprocessable):
		admin = &models.User{}
		if err := db.WithContext(ctx).Where("email = ?", email).First(admin).Error; err != nil {
			return apperror.FromDB(err, "user")
		}
		logg.Info("Admin user already present", zap.String("user_id", admin.ID))
	default:
		return err
	}

	actor := &session.Actor{ID: admin.ID, Name: admin.Name, Role: session.RoleAdmin}
	categorySvc := categories.NewService(db, cache.Config{}, logg)
	for _, req := range rootCategories {
		_, err := categorySvc.Create(ctx, actor, req)
		if err != nil && !errors.Is(err, apperror.ErrUnprocessable) {
			return err
		}
	}
	logg.Info("Seeded root categories", zap.Int("count", len(rootCategories)))
	return nil
}

func init() {
	seedCmd.Flags().StringVar(&seedAdminEmail, "admin-email", "admin@bookstore.local", "Email of the seeded admin user")
	seedCmd.Flags().StringVar(&seedAdminName, "admin-name", "Administrator", "Name of the seeded admin user")
	RootCmd.AddCommand(seedCmd)
}
