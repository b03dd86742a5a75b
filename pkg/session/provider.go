package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DeviceCookie identifies a browser when session values live server side.
const DeviceCookie = "dashboard_device"

const (
	storeContextKey  = "session_store"
	deviceContextKey = "session_device"
)

// Provider resolves the session store belonging to the browser behind a request.
type Provider interface {
	For(c *gin.Context) Store
}

// CookieProvider keeps the session in the browser itself, in signed cookies.
type CookieProvider struct {
	codec  *CookieCodec
	secure bool
}

// NewCookieProvider builds a CookieProvider signing with secret.
func NewCookieProvider(secret string, secure bool) *CookieProvider {
	return &CookieProvider{codec: NewCookieCodec(secret), secure: secure}
}

// For implements Provider. The store is cached on the request context.
func (p *CookieProvider) For(c *gin.Context) Store {
	if cached, ok := c.Get(storeContextKey); ok {
		if store, ok := cached.(Store); ok {
			return store
		}
	}
	store := NewCookieStore(c, p.codec, p.secure)
	c.Set(storeContextKey, store)
	return store
}

// DeviceProvider keeps session values in a shared backend, namespaced per browser through a
// random device cookie.
type DeviceProvider struct {
	backend Store
	prefix  string
	secure  bool
	ttl     time.Duration
}

// NewDeviceProvider builds a DeviceProvider over backend.
func NewDeviceProvider(backend Store, prefix string, secure bool, ttl time.Duration) *DeviceProvider {
	return &DeviceProvider{backend: backend, prefix: prefix, secure: secure, ttl: ttl}
}

// For implements Provider, issuing a device cookie when the browser has none.
func (p *DeviceProvider) For(c *gin.Context) Store {
	return Scope(p.backend, p.namespace(p.deviceID(c)))
}

func (p *DeviceProvider) namespace(deviceID string) string {
	if p.prefix == "" {
		return deviceID
	}
	return p.prefix + ":" + deviceID
}

func (p *DeviceProvider) deviceID(c *gin.Context) string {
	if v, ok := c.Get(deviceContextKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	id, err := c.Cookie(DeviceCookie)
	if err == nil {
		_, err = uuid.Parse(id)
	}
	if err != nil {
		id = uuid.NewString()
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(DeviceCookie, id, int(p.ttl.Seconds()), "/", "", p.secure, true)
	}
	c.Set(deviceContextKey, id)
	return id
}
