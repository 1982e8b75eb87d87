package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"
	"go.goblog.app/sharer/pkgs/contenttype"
	"go.goblog.app/sharer/pkgs/sharer"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Query parameters with the geometry of the client screen
const (
	screenWidthParam  = "sw"
	screenHeightParam = "sh"
	screenXParam      = "sx"
	screenYParam      = "sy"
)

func shareOptionsFromRequest(r *http.Request) *sharer.Options {
	query := r.URL.Query()
	options := sharer.NewOptions(nil)
	for _, name := range sharer.OptionNames {
		if v := query.Get(name); v != "" {
			options.Set(name, v)
		}
	}
	if provider := chi.URLParam(r, "provider"); provider != "" {
		options.Set(sharer.OptionProvider, provider)
	}
	return options
}

func (a *sharerApp) checkShareProvider(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		if !sharer.IsProvider(provider) || !a.providerEnabled(provider) {
			a.debug("Unknown share provider", zap.String("provider", provider))
			serve404(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requestElement is the element of a share request, the request itself is
// the click.
type requestElement struct {
	handler func()
}

func (e *requestElement) OnClick(handler func()) func() {
	e.handler = handler
	return func() {
		e.handler = nil
	}
}

func (e *requestElement) click() {
	if e.handler != nil {
		e.handler()
	}
}

// requestAttributes exposes a share request as the data-sharer attributes of
// its element. The provider is taken from the path, every other option from
// the query. A request never changes, so nothing is observed.
type requestAttributes struct {
	provider string
	query    url.Values
}

func newRequestAttributes(r *http.Request) *requestAttributes {
	return &requestAttributes{
		provider: chi.URLParam(r, "provider"),
		query:    r.URL.Query(),
	}
}

func (ra *requestAttributes) Get(name string) string {
	if name == sharer.AttributePrefix {
		return ra.provider
	}
	option, ok := strings.CutPrefix(name, sharer.AttributePrefix+"-")
	if !ok {
		return ""
	}
	return ra.query.Get(option)
}

func (*requestAttributes) Observe(string, func(string)) func() {
	return nil
}

// requestScope ends with the response.
type requestScope struct {
	onDestroy []func()
}

func (s *requestScope) OnDestroy(fn func()) {
	s.onDestroy = append(s.onDestroy, fn)
}

func (s *requestScope) destroy() {
	for _, fn := range s.onDestroy {
		fn()
	}
	s.onDestroy = nil
}

type sharePopup struct {
	url      string
	features sharer.Features
	focus    bool
}

func (p *sharePopup) Focus() {
	p.focus = true
}

// httpWindow records the share action so it can be answered as redirect or
// popup page.
type httpWindow struct {
	screen   sharer.Screen
	canFocus bool
	navigate string
	popup    *sharePopup
}

func (a *sharerApp) newHTTPWindow(r *http.Request) *httpWindow {
	query := r.URL.Query()
	screen := sharer.Screen{
		X:      cast.ToInt(query.Get(screenXParam)),
		Y:      cast.ToInt(query.Get(screenYParam)),
		Width:  cast.ToInt(query.Get(screenWidthParam)),
		Height: cast.ToInt(query.Get(screenHeightParam)),
	}
	if screen.Width <= 0 || screen.Height <= 0 {
		screen = sharer.Screen{
			Width:  a.cfg.Popup.ScreenWidth,
			Height: a.cfg.Popup.ScreenHeight,
		}
	}
	return &httpWindow{
		screen:   screen,
		canFocus: a.cfg.Popup.Focus,
	}
}

func (w *httpWindow) Screen() sharer.Screen {
	return w.screen
}

func (w *httpWindow) Navigate(url string) {
	w.navigate = url
}

func (w *httpWindow) Open(url string, features sharer.Features) sharer.Popup {
	w.popup = &sharePopup{url: url, features: features}
	return w.popup
}

func (w *httpWindow) CanFocus() bool {
	return w.canFocus
}

func (a *sharerApp) serveShare(w http.ResponseWriter, r *http.Request) {
	el := &requestElement{}
	hw := a.newHTTPWindow(r)
	scope := &requestScope{}
	defer scope.destroy()
	s, err := sharer.Bind(el, newRequestAttributes(r), scope, hw)
	if err != nil {
		a.serveShareError(w, r, err)
		return
	}
	el.click()
	switch {
	case hw.navigate != "":
		a.debug("Share link", zap.String("provider", s.Value(sharer.OptionProvider)))
		w.Header().Set("Location", hw.navigate)
		w.WriteHeader(http.StatusFound)
	case hw.popup != nil:
		a.debug("Share popup", zap.String("provider", s.Value(sharer.OptionProvider)))
		a.servePopupPage(w, s, hw.popup)
	default:
		serve404(w, r)
	}
}

func (a *sharerApp) serveShareTarget(w http.ResponseWriter, r *http.Request) {
	s, err := sharer.New(nil, shareOptionsFromRequest(r), nil)
	if err != nil {
		a.serveShareError(w, r, err)
		return
	}
	target, ok := s.Target()
	if !ok {
		serve404(w, r)
		return
	}
	if strings.EqualFold(r.URL.Query().Get("format"), "yaml") {
		w.Header().Set("Content-Type", contenttype.YAML)
		if err := yaml.NewEncoder(w).Encode(newShareTargetData(target)); err != nil {
			a.error("Failed to write share target", zap.Error(err))
		}
		return
	}
	w.Header().Set("Content-Type", contenttype.JSONUTF8)
	mw := a.min.Writer(contenttype.JSON, w)
	if err := json.NewEncoder(mw).Encode(newShareTargetData(target)); err != nil {
		a.error("Failed to write share target", zap.Error(err))
	}
	if err := mw.Close(); err != nil {
		a.error("Failed to write share target", zap.Error(err))
	}
}

func (a *sharerApp) serveShareError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, sharer.ErrInvalidConfiguration) {
		serveError(w, r, err.Error(), http.StatusBadRequest)
		return
	}
	a.error("Share failed", zap.Error(err))
	serveError(w, r, "", http.StatusInternalServerError)
}

type shareTargetData struct {
	sharer.Target `yaml:",inline"`
	Link          string `json:"link" yaml:"link"`
}

func newShareTargetData(t *sharer.Target) *shareTargetData {
	return &shareTargetData{Target: *t, Link: t.URL()}
}
