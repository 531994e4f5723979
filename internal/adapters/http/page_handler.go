package http

import (
	"bytes"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jrgriffin/site/internal/content"
	"github.com/jrgriffin/site/internal/core"
	"github.com/jrgriffin/site/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	content content.Content
	isDev   bool
	logger  *slog.Logger
}

func NewPageHandler(
	service *usecase.PageService,
	c content.Content,
	isDev bool,
	logger *slog.Logger,
) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		service: service,
		content: c,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	output := h.service.ServePage(req.Context(), usecase.ServePageInput{Content: h.content})
	if output.Error != nil {
		h.logger.Error("page.render_failed", "path", req.URL.Path, "error", output.Error)
		h.serveError(w, output.Error)
		return
	}

	w.Header().Set("ETag", output.ETag)
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	}

	if etagMatches(req.Header.Get("If-None-Match"), output.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.serveHTML(w, req, output.HTML)
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, req *http.Request, body []byte) {
	w.Header().Set("Content-Type", core.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

func (h *PageHandler) serveError(w http.ResponseWriter, err error) {
	data := core.ErrorData{
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", core.ContentTypeHTML)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", core.ContentTypeHTML)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}

// etagMatches implements the weak comparison If-None-Match asks for.
func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == want {
			return true
		}
	}
	return false
}
