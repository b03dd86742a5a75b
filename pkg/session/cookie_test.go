package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieCodecRoundTrip(t *testing.T) {
	codec := NewCookieCodec("secret")

	raw, err := codec.Encode("auth_user", []byte(`{"email":"dev@dev.dev"}`), time.Hour)
	require.NoError(t, err)

	value, err := codec.Decode("auth_user", raw)
	require.NoError(t, err)
	assert.Equal(t, `{"email":"dev@dev.dev"}`, string(value))

	_, err = codec.Decode("other_key", raw)
	assert.Error(t, err)

	_, err = NewCookieCodec("another-secret").Decode("auth_user", raw)
	assert.Error(t, err)
}

func TestCookieCodecExpiry(t *testing.T) {
	codec := NewCookieCodec("secret")
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return now }

	raw, err := codec.Encode("auth_user", []byte("v"), time.Minute)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = codec.Decode("auth_user", raw)
	assert.Error(t, err)
}

func newCookieContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	c.Request = req
	return c, rec
}

func TestCookieStoreSetWritesSignedCookie(t *testing.T) {
	codec := NewCookieCodec("secret")
	c, rec := newCookieContext(t)
	store := NewCookieStore(c, codec, false)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "auth_user", []byte("payload"), time.Hour))

	got, err := store.Get(ctx, "auth_user")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_user", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.False(t, strings.Contains(cookies[0].Value, "payload"))

	next, _ := newCookieContext(t, cookies[0])
	got, err = NewCookieStore(next, codec, false).Get(ctx, "auth_user")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))
}

func TestCookieStoreRejectsTamperedCookie(t *testing.T) {
	c, _ := newCookieContext(t, &http.Cookie{Name: "auth_user", Value: "not-a-token"})
	store := NewCookieStore(c, NewCookieCodec("secret"), false)

	_, err := store.Get(context.Background(), "auth_user")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCookieStoreDelete(t *testing.T) {
	codec := NewCookieCodec("secret")
	signed, err := codec.Encode("auth_user", []byte("payload"), time.Hour)
	require.NoError(t, err)

	c, rec := newCookieContext(t, &http.Cookie{Name: "auth_user", Value: signed})
	store := NewCookieStore(c, codec, false)
	ctx := context.Background()

	_, err = store.Get(ctx, "auth_user")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "auth_user"))
	_, err = store.Get(ctx, "auth_user")
	assert.True(t, errors.Is(err, ErrNotFound))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
