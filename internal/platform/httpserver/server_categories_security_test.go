package httpserver

import (
	"net/http"
	"testing"

	categoryhttp "inkwell/contexts/publishing/category-service/transport/http"
)

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/categories/", "", categoryhttp.CategoryRequest{Name: "Technology"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	var created categoryhttp.CategoryResponse
	decodeBody(t, rec, &created)

	rec = env.do(t, http.MethodPost, "/categories/", "", categoryhttp.CategoryRequest{Name: "technology"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate name returned %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/categories/"+created.Data.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get returned %d", rec.Code)
	}

	rec = env.do(t, http.MethodPut, "/categories/"+created.Data.ID, "", categoryhttp.CategoryRequest{Name: "Deep Tech"})
	if rec.Code != http.StatusOK {
		t.Fatalf("rename returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodDelete, "/categories/"+created.Data.ID, "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete returned %d", rec.Code)
	}
	rec = env.do(t, http.MethodGet, "/categories/"+created.Data.ID, "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete returned %d", rec.Code)
	}
}

func TestCategoryValidationOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/categories/", "", categoryhttp.CategoryRequest{Name: "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("one-letter name returned %d", rec.Code)
	}

	rec = env.do(t, http.MethodGet, "/categories/not-a-uuid", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed id returned %d", rec.Code)
	}
}
