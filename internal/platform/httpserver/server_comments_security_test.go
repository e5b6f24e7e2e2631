package httpserver

import (
	"net/http"
	"testing"

	commenthttp "inkwell/contexts/engagement/comment-service/transport/http"
)

func TestCommentLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	env.comments.Store.SeedPost(testPostRefID)
	env.comments.Store.SeedUser(testReaderID)

	rec := env.do(t, http.MethodPost, "/comments/", "", commenthttp.CreateCommentRequest{
		PostID:  testPostRefID,
		UserID:  testReaderID,
		Content: "first!",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	var created commenthttp.CommentResponse
	decodeBody(t, rec, &created)

	rec = env.do(t, http.MethodGet, "/comments/?postId="+testPostRefID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	var listed commenthttp.CommentListResponse
	decodeBody(t, rec, &listed)
	if len(listed.Data) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(listed.Data))
	}

	edited := "edited reply"
	rec = env.do(t, http.MethodPut, "/comments/"+created.Data.ID, "", commenthttp.UpdateCommentRequest{Content: &edited})
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodDelete, "/comments/"+created.Data.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete returned %d", rec.Code)
	}
	rec = env.do(t, http.MethodGet, "/comments/"+created.Data.ID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete returned %d", rec.Code)
	}
}

func TestCommentRejectsUnknownReferencesOverHTTP(t *testing.T) {
	env := newTestEnv(t)
	env.comments.Store.SeedUser(testReaderID)

	rec := env.do(t, http.MethodPost, "/comments/", "", commenthttp.CreateCommentRequest{
		PostID:  "99999999-9999-4999-8999-999999999999",
		UserID:  testReaderID,
		Content: "orphan",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown post returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodPost, "/comments/", "", commenthttp.CreateCommentRequest{
		PostID:  "99999999-9999-4999-8999-999999999999",
		UserID:  testReaderID,
		Content: "",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank content returned %d", rec.Code)
	}
}
