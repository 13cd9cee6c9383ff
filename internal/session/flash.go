// Package session carries one-shot flash messages between a redirect and the
// next page render in an HMAC-signed cookie.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CookieName is the flash cookie name
const CookieName = "dictko_flash"

// Flash categories rendered by the templates
const (
	CategoryError   = "error"
	CategoryInfo    = "info"
	CategorySuccess = "success"
)

// Message is a flashed message
type Message struct {
	Category string `json:"c"`
	Text     string `json:"m"`
}

// Flasher signs and verifies flash cookies with a shared secret
type Flasher struct {
	secret []byte
	secure bool
}

// NewFlasher creates a Flasher. secure marks the cookie Secure.
func NewFlasher(secret string, secure bool) *Flasher {
	return &Flasher{
		secret: []byte(secret),
		secure: secure,
	}
}

// Set stores msg for the next request, replacing any pending message
func (f *Flasher) Set(c *gin.Context, category, text string) {
	payload, err := json.Marshal(Message{Category: category, Text: text})
	if err != nil {
		return
	}
	value := base64.RawURLEncoding.EncodeToString(payload)
	f.write(c, value+"."+f.sign(value), 0)
}

// Pop returns the pending message and clears the cookie. A missing, tampered or
// undecodable cookie yields false.
func (f *Flasher) Pop(c *gin.Context) (Message, bool) {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return Message{}, false
	}
	f.write(c, "", -1)

	value, sig, ok := strings.Cut(raw, ".")
	if !ok || !hmac.Equal([]byte(f.sign(value)), []byte(sig)) {
		return Message{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Message{}, false
	}
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil || msg.Text == "" {
		return Message{}, false
	}
	return msg, true
}

func (f *Flasher) sign(value string) string {
	mac := hmac.New(sha256.New, f.secret)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

func (f *Flasher) write(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", f.secure, true)
}
