package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"inkwell/contexts/publishing/post-service/adapters/memory"
	"inkwell/contexts/publishing/post-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/post-service/domain/errors"
	"inkwell/contexts/publishing/post-service/ports"
	"inkwell/internal/shared/validation"
)

const (
	creatorID  = "11111111-1111-4111-8111-111111111111"
	adminID    = "22222222-2222-4222-8222-222222222222"
	readerID   = "33333333-3333-4333-8333-333333333333"
	categoryID = "44444444-4444-4444-8444-444444444444"
	missingID  = "99999999-9999-4999-8999-999999999999"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type counterIDs struct{ next int }

func (g *counterIDs) NewID(_ context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("%08d-0000-4000-8000-000000000000", g.next), nil
}

func newTestService(store *memory.Store) Service {
	store.SeedAuthor(ports.AccountRecord{ID: creatorID, Name: "Active Creator", Role: "creator", Status: "active"})
	store.SeedAuthor(ports.AccountRecord{ID: adminID, Name: "Site Admin", Role: "admin", Status: "active"})
	store.SeedAuthor(ports.AccountRecord{ID: readerID, Name: "Plain Reader", Role: "user", Status: "active"})
	store.SeedCategory(ports.CategorySummary{ID: categoryID, Name: "Engineering"})
	return Service{
		Posts:    store,
		Accounts: store,
		Clock:    fixedClock{at: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)},
		IDs:      &counterIDs{},
	}
}

func seedPost(t *testing.T, store *memory.Store, id string, authorID string, status entities.Status, createdAt time.Time) {
	t.Helper()
	_, err := store.Create(context.Background(), entities.Post{
		ID:         id,
		Title:      "Seeded title",
		Content:    "Seeded content body text",
		AuthorID:   authorID,
		CategoryID: categoryID,
		Status:     status,
		CreatedAt:  createdAt,
	})
	if err != nil {
		t.Fatalf("seed post failed: %v", err)
	}
}

func defaultPage() validation.Page {
	return validation.Page{Limit: validation.DefaultPageLimit}
}

func TestListHidesSuspendedForNonAdmin(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusActive, base)
	seedPost(t, store, "aaaaaaa2-0000-4000-8000-000000000000", creatorID, entities.StatusSuspended, base.Add(time.Hour))

	page, err := service.ListPosts(context.Background(), ports.Caller{}, defaultPage(), "")
	if err != nil {
		t.Fatalf("anonymous list failed: %v", err)
	}
	for _, item := range page.Items {
		if item.Post.Status != entities.StatusActive {
			t.Fatalf("suspended post leaked to anonymous caller: %s", item.Post.ID)
		}
	}
	if len(page.Items) != 1 {
		t.Fatalf("expected 1 visible post, got %d", len(page.Items))
	}
}

func TestListDefaultsZeroValuePage(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusActive, base)

	// Callers constructing Page{} directly get the default limit
	// instead of a division by zero.
	page, err := service.ListPosts(context.Background(), ports.Caller{}, validation.Page{}, "")
	if err != nil {
		t.Fatalf("zero-value page list failed: %v", err)
	}
	if page.Page.Limit != validation.DefaultPageLimit {
		t.Fatalf("expected default limit %d, got %d", validation.DefaultPageLimit, page.Page.Limit)
	}
	if page.Page.TotalPages != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: total_pages=%d items=%d", page.Page.TotalPages, len(page.Items))
	}
}

func TestListShowsSuspendedOnlyToAdminAskingAll(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusActive, base)
	seedPost(t, store, "aaaaaaa2-0000-4000-8000-000000000000", creatorID, entities.StatusSuspended, base.Add(time.Hour))

	admin := ports.Caller{ID: adminID, Role: "admin", Status: "active"}
	withoutAll, err := service.ListPosts(context.Background(), admin, defaultPage(), "")
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(withoutAll.Items) != 1 {
		t.Fatalf("admin without status=all must see active only, got %d", len(withoutAll.Items))
	}

	withAll, err := service.ListPosts(context.Background(), admin, defaultPage(), "all")
	if err != nil {
		t.Fatalf("admin list all failed: %v", err)
	}
	if len(withAll.Items) != 2 {
		t.Fatalf("admin with status=all must see both, got %d", len(withAll.Items))
	}

	creator := ports.Caller{ID: creatorID, Role: "creator", Status: "active"}
	nonAdminAll, err := service.ListPosts(context.Background(), creator, defaultPage(), "all")
	if err != nil {
		t.Fatalf("creator list failed: %v", err)
	}
	if len(nonAdminAll.Items) != 1 {
		t.Fatal("status=all must not widen visibility for non-admins")
	}
}

func TestListPaginationEnvelope(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		seedPost(t, store,
			fmt.Sprintf("aaaaaa%02d-0000-4000-8000-000000000000", i),
			creatorID, entities.StatusActive, base.Add(time.Duration(i)*time.Minute))
	}

	page, err := service.ListPosts(context.Background(), ports.Caller{}, validation.Page{Limit: 10, Offset: 20}, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page.Items) != 5 {
		t.Fatalf("expected 5 items on the last page, got %d", len(page.Items))
	}
	if page.Page.Total != 25 || page.Page.HasMore || page.Page.TotalPages != 3 {
		t.Fatalf("unexpected envelope %+v", page.Page)
	}
	if !page.Items[0].Post.CreatedAt.Before(page.Items[4].Post.CreatedAt) {
		t.Fatal("listing must be ordered by creation time ascending")
	}
}

func TestCreateRejectsUserRoleRegardlessOfFields(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)

	reader := ports.Caller{ID: readerID, Role: "user", Status: "active"}
	_, err := service.CreatePost(context.Background(), reader, ports.CreateRequest{
		Title:      "A perfectly valid title",
		Content:    "A perfectly valid content body",
		CategoryID: categoryID,
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreateRequiresAuthentication(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)

	_, err := service.CreatePost(context.Background(), ports.Caller{}, ports.CreateRequest{
		Title:      "A perfectly valid title",
		Content:    "A perfectly valid content body",
		CategoryID: categoryID,
	})
	if !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestCreateChecksStoredStatusNotTokenClaims(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	suspendedID := "55555555-5555-4555-8555-555555555555"
	store.SeedAuthor(ports.AccountRecord{ID: suspendedID, Name: "Recently Banned", Role: "creator", Status: "suspended"})

	// Token still claims active: the stored account wins.
	caller := ports.Caller{ID: suspendedID, Role: "creator", Status: "active"}
	_, err := service.CreatePost(context.Background(), caller, ports.CreateRequest{
		Title:      "A perfectly valid title",
		Content:    "A perfectly valid content body",
		CategoryID: categoryID,
	})
	if !errors.Is(err, domainerrors.ErrAccountSuspended) {
		t.Fatalf("expected ErrAccountSuspended, got %v", err)
	}
}

func TestCreateRejectsShortTitleWithoutInsert(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)

	creator := ports.Caller{ID: creatorID, Role: "creator", Status: "active"}
	_, err := service.CreatePost(context.Background(), creator, ports.CreateRequest{
		Title:      "ab",
		Content:    "A perfectly valid content body",
		CategoryID: categoryID,
	})
	var fieldErr *validation.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "title" {
		t.Fatalf("expected title field error, got %v", err)
	}

	page, _ := service.ListPosts(context.Background(), ports.Caller{ID: adminID, Role: "admin"}, defaultPage(), "all")
	if len(page.Items) != 0 {
		t.Fatal("rejected create must not insert a record")
	}
}

func TestCreateSetsActiveStatusAndEnriches(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)

	creator := ports.Caller{ID: creatorID, Role: "creator", Status: "active"}
	item, err := service.CreatePost(context.Background(), creator, ports.CreateRequest{
		Title:      "  Trimmed title  ",
		Content:    "A perfectly valid content body",
		ImageURL:   "https://cdn.example.com/cover.png",
		CategoryID: categoryID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if item.Post.Status != entities.StatusActive {
		t.Fatalf("new posts must be active, got %s", item.Post.Status)
	}
	if item.Post.Title != "Trimmed title" {
		t.Fatalf("title not trimmed: %q", item.Post.Title)
	}
	if item.Author.Name != "Active Creator" || item.Category.Name != "Engineering" {
		t.Fatalf("missing enrichment: %+v", item)
	}
}

func TestUpdateForbiddenIsDistinctFromNotFound(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusActive, time.Now().UTC())

	title := "Another valid title"
	stranger := ports.Caller{ID: readerID, Role: "user", Status: "active"}

	_, err := service.UpdatePost(context.Background(), stranger, "aaaaaaa1-0000-4000-8000-000000000000", ports.UpdateRequest{Title: &title})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("non-author: expected ErrForbidden, got %v", err)
	}

	_, err = service.UpdatePost(context.Background(), stranger, missingID, ports.UpdateRequest{Title: &title})
	if !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("missing post: expected ErrPostNotFound, got %v", err)
	}
}

func TestUpdateByAuthorAndByAdmin(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusActive, time.Now().UTC())

	title := "Retitled by the author"
	author := ports.Caller{ID: creatorID, Role: "creator", Status: "active"}
	item, err := service.UpdatePost(context.Background(), author, "aaaaaaa1-0000-4000-8000-000000000000", ports.UpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if item.Post.Title != title {
		t.Fatalf("title not applied: %q", item.Post.Title)
	}

	status := "suspended"
	admin := ports.Caller{ID: adminID, Role: "admin", Status: "active"}
	item, err = service.UpdatePost(context.Background(), admin, "aaaaaaa1-0000-4000-8000-000000000000", ports.UpdateRequest{Status: &status})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if item.Post.Status != entities.StatusSuspended {
		t.Fatalf("status not applied: %s", item.Post.Status)
	}
	if item.Post.Title != title {
		t.Fatal("partial update must not clobber other fields")
	}
}

func TestUpdateEmptyPatchRejected(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusActive, time.Now().UTC())

	author := ports.Caller{ID: creatorID, Role: "creator", Status: "active"}
	_, err := service.UpdatePost(context.Background(), author, "aaaaaaa1-0000-4000-8000-000000000000", ports.UpdateRequest{})
	if !errors.Is(err, domainerrors.ErrNoFields) {
		t.Fatalf("expected ErrNoFields, got %v", err)
	}
}

func TestDeleteReturnsIdentifier(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusActive, time.Now().UTC())

	stranger := ports.Caller{ID: readerID, Role: "user", Status: "active"}
	if _, err := service.DeletePost(context.Background(), stranger, "aaaaaaa1-0000-4000-8000-000000000000"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	author := ports.Caller{ID: creatorID, Role: "creator", Status: "active"}
	deleted, err := service.DeletePost(context.Background(), author, "aaaaaaa1-0000-4000-8000-000000000000")
	if err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if deleted != "aaaaaaa1-0000-4000-8000-000000000000" {
		t.Fatalf("unexpected deleted id %s", deleted)
	}
}

func TestGetPostVisibilityFilterIsConfigurable(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusSuspended, time.Now().UTC())

	// Observed behavior: single reads are unfiltered.
	if _, err := service.GetPost(context.Background(), ports.Caller{}, "aaaaaaa1-0000-4000-8000-000000000000"); err != nil {
		t.Fatalf("unfiltered read failed: %v", err)
	}

	service.FilterSingleReads = true
	_, err := service.GetPost(context.Background(), ports.Caller{}, "aaaaaaa1-0000-4000-8000-000000000000")
	if !errors.Is(err, domainerrors.ErrPostNotFound) {
		t.Fatalf("filtered read of suspended post: expected ErrPostNotFound, got %v", err)
	}

	admin := ports.Caller{ID: adminID, Role: "admin", Status: "active"}
	if _, err := service.GetPost(context.Background(), admin, "aaaaaaa1-0000-4000-8000-000000000000"); err != nil {
		t.Fatalf("admin filtered read failed: %v", err)
	}
}

func TestLikeAndShareIncrementCounters(t *testing.T) {
	store := memory.NewStore()
	service := newTestService(store)
	seedPost(t, store, "aaaaaaa1-0000-4000-8000-000000000000", creatorID, entities.StatusActive, time.Now().UTC())

	if _, err := service.LikePost(context.Background(), ports.Caller{}, "aaaaaaa1-0000-4000-8000-000000000000"); !errors.Is(err, domainerrors.ErrUnauthenticated) {
		t.Fatalf("anonymous like: expected ErrUnauthenticated, got %v", err)
	}

	reader := ports.Caller{ID: readerID, Role: "user", Status: "active"}
	item, err := service.LikePost(context.Background(), reader, "aaaaaaa1-0000-4000-8000-000000000000")
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if item.Post.LikesCount != 1 {
		t.Fatalf("expected likes_count 1, got %d", item.Post.LikesCount)
	}

	item, err = service.SharePost(context.Background(), reader, "aaaaaaa1-0000-4000-8000-000000000000")
	if err != nil {
		t.Fatalf("share failed: %v", err)
	}
	if item.Post.ShareCount != 1 {
		t.Fatalf("expected share_count 1, got %d", item.Post.ShareCount)
	}
	if !strings.HasPrefix(item.Post.ID, "aaaaaaa1") {
		t.Fatalf("unexpected post id %s", item.Post.ID)
	}
}
