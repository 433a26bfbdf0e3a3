package controllerImp

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"cropdiary/pkg/library"
)

type httpCtrl struct {
	s     *library.Service
	allow map[string]bool
}

func New(s *library.Service, allowedDomains string) *httpCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		h = strings.TrimSpace(strings.ToLower(h))
		if h != "" {
			allow[h] = true
		}
	}
	return &httpCtrl{s: s, allow: allow}
}

func (h *httpCtrl) Register(e *echo.Echo) {
	e.GET("/library", h.list)
	e.POST("/library/import", h.importCatalog)
}

func (h *httpCtrl) list(c echo.Context) error {
	return c.JSON(http.StatusOK, h.s.List())
}

func (h *httpCtrl) importCatalog(c echo.Context) error {
	var body struct {
		URL  string `json:"url"`
		HTML string `json:"html"`
	}
	if err := c.Bind(&body); err != nil || (body.URL == "" && body.HTML == "") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url or html required"})
	}

	raw := []byte(body.HTML)
	if body.URL != "" {
		u, err := url.Parse(body.URL)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad url"})
		}
		if !h.allow[strings.ToLower(u.Host)] {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "domain not allowed"})
		}
		raw, err = library.Fetch(body.URL, 0)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
	}

	rows, err := library.ParseHTML(bytes.NewReader(raw))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	added, updated, err := h.s.Merge(rows)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"added": added, "updated": updated})
}
