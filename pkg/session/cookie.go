package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type cookieClaims struct {
	Value string `json:"val"`
	jwt.RegisteredClaims
}

// CookieCodec signs values so they can be kept in browser cookies without being tampered with.
type CookieCodec struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewCookieCodec builds a codec signing with secret (HS256).
func NewCookieCodec(secret string) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), issuer: "sma-adp-dashboard", now: time.Now}
}

// Encode signs value for key. A positive ttl bounds the token lifetime.
func (cc *CookieCodec) Encode(key string, value []byte, ttl time.Duration) (string, error) {
	issuedAt := cc.now().UTC()
	claims := &cookieClaims{
		Value: string(value),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   cc.issuer,
			Subject:  key,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cc.secret)
}

// Decode verifies raw and returns the value signed for key.
func (cc *CookieCodec) Decode(key, raw string) ([]byte, error) {
	claims := &cookieClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return cc.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cc.issuer),
		jwt.WithSubject(key),
		jwt.WithTimeFunc(cc.now),
	)
	if err != nil {
		return nil, fmt.Errorf("decode cookie %s: %w", key, err)
	}
	return []byte(claims.Value), nil
}

type pendingValue struct {
	value   []byte
	deleted bool
}

// CookieStore keeps values in signed cookies of a single request/response pair. Values
// written during the request are visible to later reads of the same request.
type CookieStore struct {
	c       *gin.Context
	codec   *CookieCodec
	secure  bool
	pending map[string]pendingValue
}

// NewCookieStore binds a cookie store to c.
func NewCookieStore(c *gin.Context, codec *CookieCodec, secure bool) *CookieStore {
	return &CookieStore{c: c, codec: codec, secure: secure, pending: make(map[string]pendingValue)}
}

// Get implements Store. Cookies that fail verification read as missing.
func (s *CookieStore) Get(_ context.Context, key string) ([]byte, error) {
	if p, ok := s.pending[key]; ok {
		if p.deleted {
			return nil, ErrNotFound
		}
		return append([]byte(nil), p.value...), nil
	}
	raw, err := s.c.Cookie(key)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	value, err := s.codec.Decode(key, raw)
	if err != nil {
		return nil, ErrNotFound
	}
	return value, nil
}

// Set implements Store.
func (s *CookieStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	signed, err := s.codec.Encode(key, value, ttl)
	if err != nil {
		return fmt.Errorf("sign cookie %s: %w", key, err)
	}
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, signed, int(ttl.Seconds()), "/", "", s.secure, true)
	s.pending[key] = pendingValue{value: append([]byte(nil), value...)}
	return nil
}

// Delete implements Store.
func (s *CookieStore) Delete(_ context.Context, key string) error {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(key, "", -1, "/", "", s.secure, true)
	s.pending[key] = pendingValue{deleted: true}
	return nil
}
