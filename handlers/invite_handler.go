package handlers

import (
	"encoding/base64"
	"fmt"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/YairCer/iglesia-app/config"
)

type InviteHandler struct {
	cfg *config.Config
}

func NewInviteHandler(cfg *config.Config) *InviteHandler {
	return &InviteHandler{cfg: cfg}
}

// localIP learns which interface routes outward by "connecting" a UDP socket
// to a well-known address; no datagram is ever sent. Any failure falls back
// to loopback.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "127.0.0.1"
	}
	return addr.IP.String()
}

// inviteURL resolves the address other devices should use to reach this
// instance: explicit PUBLIC_URL first, the LAN address while developing,
// otherwise whatever host the request came in on.
func (h *InviteHandler) inviteURL(c echo.Context) string {
	if h.cfg.PublicURL != "" {
		return h.cfg.PublicURL
	}
	if h.cfg.IsDev() {
		return fmt.Sprintf("http://%s:%s", localIP(), h.cfg.AppPort)
	}
	return fmt.Sprintf("%s://%s", c.Scheme(), c.Request().Host)
}

// GET /invite
func (h *InviteHandler) Show(c echo.Context) error {
	url := h.inviteURL(c)

	png, err := qrcode.Encode(url, qrcode.Low, 320)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "QR_ENCODE_FAILED")
	}

	return render(c, http.StatusOK, "invite.html", echo.Map{
		"URL":    url,
		"QRCode": base64.StdEncoding.EncodeToString(png),
	})
}
