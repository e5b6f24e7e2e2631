package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testCodec(now time.Time) Codec {
	return Codec{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
		Now:    func() time.Time { return now },
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := testCodec(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	raw, err := codec.Issue(Claims{
		ID:     "7b1f54ab-32c9-4f1e-9d0a-62c3f7d9a101",
		Email:  "writer@example.com",
		Role:   "creator",
		Status: "active",
	})
	require.NoError(t, err)

	claims, err := codec.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "7b1f54ab-32c9-4f1e-9d0a-62c3f7d9a101", claims.ID)
	require.Equal(t, "writer@example.com", claims.Email)
	require.Equal(t, "creator", claims.Role)
	require.Equal(t, "active", claims.Status)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := testCodec(issued)

	raw, err := codec.Issue(Claims{ID: "user-1", Role: "user", Status: "active"})
	require.NoError(t, err)

	late := codec
	late.Now = func() time.Time { return issued.Add(time.Hour + time.Minute) }
	_, err = late.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := testCodec(now)

	raw, err := codec.Issue(Claims{ID: "user-1", Role: "user", Status: "active"})
	require.NoError(t, err)

	other := codec
	other.Secret = []byte("another-secret")
	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	codec := testCodec(time.Now())
	_, err := codec.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueRequiresSecret(t *testing.T) {
	codec := Codec{}
	_, err := codec.Issue(Claims{ID: "user-1"})
	require.Error(t, err)
}
