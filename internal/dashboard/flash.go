package dashboard

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

const flashCookie = "dash_flash"

// Flash is a one-shot notification surfaced on the next rendered page, the
// server-side stand-in for a toast.
type Flash struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Variant     string `json:"variant,omitempty"` // "" or "destructive"
}

// SetFlash queues a flash for the next page render.
func SetFlash(c *gin.Context, f Flash) {
	buf, err := json.Marshal(f)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, base64.URLEncoding.EncodeToString(buf), 60, "/", "", false, true)
}

// PopFlash returns the pending flash, if any, and clears it.
func PopFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	buf, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(buf, &f); err != nil {
		return nil
	}
	return &f
}
