// Package httpadapter serves the directory site: server-rendered pages over
// the same filtering, pagination and render building blocks the page engine
// uses.
package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jordibmorey/nauticards/internal/catalog"
	"github.com/jordibmorey/nauticards/internal/domain"
	"github.com/jordibmorey/nauticards/internal/i18n"
	"github.com/jordibmorey/nauticards/internal/pagination"
	"github.com/jordibmorey/nauticards/internal/ports"
	"github.com/jordibmorey/nauticards/internal/render"
	"github.com/jordibmorey/nauticards/internal/services/directory"
	"github.com/jordibmorey/nauticards/internal/sitemap"
	"github.com/jordibmorey/nauticards/internal/urlstate"
)

type Server struct {
	dir         *directory.Service
	forms       ports.FormForwarder
	sm          *sitemap.Generator
	dict        *i18n.Dict
	log         *zap.Logger
	defaultLang string

	mu   sync.Mutex
	cats map[string]*catalog.Catalogs // per language, loaded once per process
}

func New(dir *directory.Service, forms ports.FormForwarder, sm *sitemap.Generator, dict *i18n.Dict, defaultLang string, logger *zap.Logger) *Server {
	return &Server{
		dir:         dir,
		forms:       forms,
		sm:          sm,
		dict:        dict,
		log:         logger,
		defaultLang: defaultLang,
		cats:        make(map[string]*catalog.Catalogs),
	}
}

// Routes returns the site's chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Get("/", s.handleHome)
	r.Get("/directorio", s.handleDirectory)
	r.Get("/contacto", s.handleContact)
	r.Get("/empresa/{key}", s.handleCompany)
	r.Get("/sitemap.xml", s.handleSitemap)
	r.Get("/static/site.css", s.handleStylesheet)
	r.Post("/api/forms/{form}", s.handleForm)
	return r
}

func (s *Server) lang(r *http.Request) string {
	if l := r.URL.Query().Get(urlstate.ParamLang); l != "" && s.dict.Has(l) {
		return l
	}
	return s.defaultLang
}

// catalogs loads and memoizes the catalog set for a language. Failed loads
// are not cached, so the next request retries.
func (s *Server) catalogs(ctx context.Context, lang string) (*catalog.Catalogs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.cats[lang]; ok {
		return c, nil
	}
	c, err := s.dir.Load(ctx, lang)
	if err != nil {
		return nil, err
	}
	s.cats[lang] = c
	return c, nil
}

func (s *Server) writePage(w http.ResponseWriter, status int, lang, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(render.Page(s.dict.T(lang, "site.title"), body)))
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	lang := s.lang(r)
	cats, err := s.catalogs(r.Context(), lang)
	if err != nil {
		s.log.Error("home: catalog load failed", zap.Error(err))
		s.writePage(w, http.StatusOK, lang, render.ErrorState(s.dict, lang))
		return
	}
	body := `<h2>` + s.dict.T(lang, "home.featured") + `</h2>` +
		render.Cards(s.dir.Featured(cats), cats, s.dict, lang)
	s.writePage(w, http.StatusOK, lang, body)
}

func (s *Server) handleDirectory(w http.ResponseWriter, r *http.Request) {
	lang := s.lang(r)
	f := urlstate.Read(r.URL.Query())

	cats, err := s.catalogs(r.Context(), lang)
	if err != nil {
		s.log.Error("directory: catalog load failed", zap.Error(err))
		s.writePage(w, http.StatusOK, lang, render.ErrorState(s.dict, lang))
		return
	}

	// below the minimum-filter threshold the page shows guidance; the
	// remote query is never reached
	if !f.Active() {
		s.writePage(w, http.StatusOK, lang, render.Guidance(s.dict, lang))
		return
	}

	res, err := s.dir.Search(r.Context(), lang, f)
	if err != nil {
		s.writePage(w, http.StatusOK, lang, render.ErrorState(s.dict, lang))
		return
	}

	win := pagination.ComputeWindow(res.Total, res.PageSize, f.Page)
	body := render.Cards(res.Items, cats, s.dict, lang) +
		render.Pagination(win, r.URL.Path, r.URL.Query(), s.dict, lang)
	s.writePage(w, http.StatusOK, lang, body)
}

func (s *Server) handleCompany(w http.ResponseWriter, r *http.Request) {
	lang := s.lang(r)
	cats, err := s.catalogs(r.Context(), lang)
	if err != nil {
		s.log.Error("detail: catalog load failed", zap.Error(err))
		s.writePage(w, http.StatusOK, lang, render.ErrorState(s.dict, lang))
		return
	}

	c, err := s.dir.CompanyByKey(cats, chi.URLParam(r, "key"))
	if errors.Is(err, domain.ErrNotFound) {
		s.writePage(w, http.StatusNotFound, lang, render.NotFound(s.dict, lang))
		return
	}
	s.writePage(w, http.StatusOK, lang, render.Detail(c, cats, s.dict, lang))
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	lang := s.lang(r)
	body := `<form class="contact-form" data-endpoint="/api/forms/contact">` +
		`<input name="nombre" required>` +
		`<input name="email" type="email" required>` +
		`<textarea name="mensaje" required></textarea>` +
		`<button type="submit">&rarr;</button>` +
		`</form>`
	s.writePage(w, http.StatusOK, lang, body)
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	body, err := s.sm.Generate(r.Context())
	if err != nil {
		s.log.Error("sitemap generation failed", zap.Error(err))
		http.Error(w, "sitemap unavailable: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}

func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(stylesheet))
}

const stylesheet = `.cards{list-style:none;padding:0}.card{border:1px solid #dde;margin:.5em 0;padding:1em}.badge{color:#b80}.pagination{margin:1em 0}.page-num.current{font-weight:bold}.page-step.disabled{color:#999}.error{color:#b00}.guidance{color:#468}`
