package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	commentpostgres "inkwell/contexts/engagement/comment-service/adapters/postgres"
	commententities "inkwell/contexts/engagement/comment-service/domain/entities"
	bcryptadapter "inkwell/contexts/identity/account-service/adapters/bcrypt"
	accountpostgres "inkwell/contexts/identity/account-service/adapters/postgres"
	accountentities "inkwell/contexts/identity/account-service/domain/entities"
	categorypostgres "inkwell/contexts/publishing/category-service/adapters/postgres"
	categoryentities "inkwell/contexts/publishing/category-service/domain/entities"
	postpostgres "inkwell/contexts/publishing/post-service/adapters/postgres"
	postentities "inkwell/contexts/publishing/post-service/domain/entities"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var users, posts, commentsPerPost int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with generated demo content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pg, err := connect()
			if err != nil {
				return err
			}
			defer func() { _ = pg.Close() }()

			seeder := seeder{
				accounts:   accountpostgres.NewRepository(pg.DB, slog.Default()),
				categories: categorypostgres.NewRepository(pg.DB, slog.Default()),
				posts:      postpostgres.NewRepository(pg.DB, slog.Default()),
				comments:   commentpostgres.NewRepository(pg.DB, slog.Default()),
			}
			if err := seeder.run(cmd.Context(), users, posts, commentsPerPost); err != nil {
				return err
			}
			color.Green("seeded %d users, %d posts, up to %d comments each", users, posts, commentsPerPost)
			return nil
		},
	}

	cmd.Flags().IntVar(&users, "users", 5, "number of creator accounts")
	cmd.Flags().IntVar(&posts, "posts", 20, "number of posts")
	cmd.Flags().IntVar(&commentsPerPost, "comments", 3, "max comments per post")
	return cmd
}

type seeder struct {
	accounts   *accountpostgres.Repository
	categories *categorypostgres.Repository
	posts      *postpostgres.Repository
	comments   *commentpostgres.Repository
}

var seedCategoryNames = []string{"Engineering", "Design", "Product", "Writing", "Travel"}

func (s seeder) run(ctx context.Context, users int, posts int, commentsPerPost int) error {
	hash, err := bcryptadapter.Hasher{}.Hash("Password1")
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	userIDs := make([]string, 0, users)
	for i := 0; i < users; i++ {
		account, err := s.accounts.Create(ctx, accountentities.Account{
			ID:           uuid.NewString(),
			Name:         gofakeit.Name(),
			Email:        strings.ToLower(gofakeit.Email()),
			PasswordHash: hash,
			Role:         accountentities.RoleCreator,
			Status:       accountentities.StatusActive,
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
		userIDs = append(userIDs, account.ID)
	}

	categoryIDs := make([]string, 0, len(seedCategoryNames))
	for _, name := range seedCategoryNames {
		category, err := s.categories.Create(ctx, categoryentities.Category{
			ID:   uuid.NewString(),
			Name: name,
		})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		categoryIDs = append(categoryIDs, category.ID)
	}

	for i := 0; i < posts; i++ {
		created, err := s.posts.Create(ctx, postentities.Post{
			ID:         uuid.NewString(),
			Title:      gofakeit.Sentence(6),
			Content:    gofakeit.Paragraph(2, 4, 12, " "),
			ImageURL:   gofakeit.URL(),
			AuthorID:   userIDs[i%len(userIDs)],
			CategoryID: categoryIDs[i%len(categoryIDs)],
			Status:     postentities.StatusActive,
			CreatedAt:  now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			return fmt.Errorf("seed post %d: %w", i, err)
		}
		for j := 0; j < gofakeit.Number(0, commentsPerPost); j++ {
			_, err := s.comments.Create(ctx, commententities.Comment{
				ID:        uuid.NewString(),
				PostID:    created.Post.ID,
				UserID:    userIDs[gofakeit.Number(0, len(userIDs)-1)],
				Content:   gofakeit.Sentence(10),
				CreatedAt: now.Add(time.Duration(i) * time.Minute),
			})
			if err != nil {
				return fmt.Errorf("seed comment on post %d: %w", i, err)
			}
		}
	}
	return nil
}
