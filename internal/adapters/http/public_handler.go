package http

import (
	iofs "io/fs"
	"net/http"
	"strings"

	"github.com/jrgriffin/site/internal/core"
)

// PublicHandler serves files from the public directory and hands every
// other request to next.
type PublicHandler struct {
	public iofs.FS
	next   http.Handler
}

func NewPublicHandler(public iofs.FS, next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return &PublicHandler{
		public: public,
		next:   next,
	}
}

func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h.public == nil || (req.Method != http.MethodGet && req.Method != http.MethodHead) {
		h.next.ServeHTTP(w, req)
		return
	}

	path := strings.TrimPrefix(req.URL.Path, "/")
	if path == "" || core.ValidateAssetPath(req.URL.Path) != nil {
		h.next.ServeHTTP(w, req)
		return
	}

	name := core.AssetName(req.URL.Path)
	info, err := iofs.Stat(h.public, name)
	if err != nil || info.IsDir() {
		h.next.ServeHTTP(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(name))
	http.ServeFileFS(w, req, h.public, name)
}
