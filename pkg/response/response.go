package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sma-adp-dashboard/internal/models"
	appErrors "github.com/noah-isme/sma-adp-dashboard/pkg/errors"
)

// Envelope represents the common response contract.
type Envelope struct {
	Data         interface{}            `json:"data,omitempty"`
	Error        *appErrors.Error       `json:"error,omitempty"`
	Notification *models.Notification   `json:"notification,omitempty"`
	Meta         map[string]interface{} `json:"meta,omitempty"`
}

// JSON sends a success response with optional metadata.
func JSON(c *gin.Context, status int, data interface{}, meta ...map[string]interface{}) {
	noStore(c)
	envelope := Envelope{Data: data}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// Notify sends a success response carrying a user-facing notification.
func Notify(c *gin.Context, status int, data interface{}, notification models.Notification) {
	noStore(c)
	c.JSON(status, Envelope{Data: data, Notification: &notification})
}

// Created responds with HTTP 201 Created and a notification.
func Created(c *gin.Context, data interface{}, notification models.Notification) {
	Notify(c, http.StatusCreated, data, notification)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error, meta ...map[string]interface{}) {
	appErr := appErrors.FromError(err)
	noStore(c)
	envelope := Envelope{Error: appErr}
	if len(meta) > 0 && meta[0] != nil {
		envelope.Meta = meta[0]
	}
	c.JSON(appErr.Status, envelope)
}

// Failure sends an error response together with the rejection notification.
func Failure(c *gin.Context, err error, notification models.Notification) {
	appErr := appErrors.FromError(err)
	noStore(c)
	envelope := Envelope{Error: appErr}
	if notification.Title != "" {
		envelope.Notification = &notification
	}
	c.JSON(appErr.Status, envelope)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
