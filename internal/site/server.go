package site

import (
	"net/http"
	"path/filepath"

	"github.com/julienschmidt/httprouter"
)

// NewPreviewRouter returns a handler serving the generated page at / and the
// stylesheet at its own basename, mirroring how the two files sit next to
// each other on disk.
func NewPreviewRouter(htmlPath, cssPath string) http.Handler {
	router := httprouter.New()
	router.GET("/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		http.ServeFile(w, r, htmlPath)
	})
	router.GET("/"+filepath.Base(cssPath), func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		http.ServeFile(w, r, cssPath)
	})
	return router
}

// Serve blocks serving the preview site on addr.
func Serve(addr, htmlPath, cssPath string) error {
	return http.ListenAndServe(addr, NewPreviewRouter(htmlPath, cssPath))
}
