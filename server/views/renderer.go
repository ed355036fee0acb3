package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"fantasy-stats-web/logging"
)

// Page template names.
const (
	HomePage          = "home"
	LeaguePage        = "league"
	SimulationPage    = "simulation"
	RecordsPage       = "records"
	TooEarlyPage      = "too_early"
	InvalidLeaguePage = "invalid_league"
	NotFoundPage      = "not_found"
	ErrorPage         = "error"
)

var pageNames = []string{
	HomePage, LeaguePage, SimulationPage, RecordsPage,
	TooEarlyPage, InvalidLeaguePage, NotFoundPage, ErrorPage,
}

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// layoutData is what the layout template sees. Page is the page specific
// model.
type layoutData struct {
	Head    template.HTML
	Notices *NoticeStore
	Page    interface{}
}

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	pages   map[string]*template.Template
	notices *NoticeStore
	head    head
	logger  *logging.Logger
}

// NewRenderer parses every page template. Analytics stay off until
// InitAnalytics is called.
func NewRenderer(notices *NoticeStore) (*Renderer, error) {
	if notices == nil {
		notices = NewNoticeStore(nil)
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	h, err := buildHead("")
	if err != nil {
		return nil, err
	}
	return &Renderer{
		pages:   pages,
		notices: notices,
		head:    h,
		logger:  logging.For("Renderer"),
	}, nil
}

// InitAnalytics adds the gtag snippet for measurementID to every page served
// to a non local host. It must be called before the server starts.
func (r *Renderer) InitAnalytics(measurementID string) error {
	h, err := buildHead(measurementID)
	if err != nil {
		return fmt.Errorf("build analytics head: %w", err)
	}
	r.head = h
	r.logger.Info("Analytics enabled with measurement id %s", measurementID)
	return nil
}

// Notices returns the store the templates read notices from.
func (r *Renderer) Notices() *NoticeStore {
	return r.notices
}

// Render writes page with status. Nothing is written when the template
// fails, so the caller can still answer with an error page.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, "layout", layoutData{
		Head:    r.head.forRequest(req),
		Notices: r.notices,
		Page:    data,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Warn("Error writing %s page: %v", page, err)
	}
	return nil
}

// StaticHandler serves the embedded static assets under prefix.
func StaticHandler(prefix string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}

var templateFuncs = template.FuncMap{
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
	"fixed": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
	"inc": func(i int) int {
		return i + 1
	},
}
