package main

import (
	"encoding/json"
	"net/http"
	"net/url"

	"go.goblog.app/sharer/pkgs/contenttype"
	"go.goblog.app/sharer/pkgs/htmlbuilder"
	"go.goblog.app/sharer/pkgs/sharer"
	"go.uber.org/zap"
)

var shareProviderLabels = map[string]string{
	"facebook": "Facebook",
	"linkedin": "LinkedIn",
	"twitter":  "Twitter",
	"email":    "Email",
	"gmail":    "Gmail",
	"reddit":   "Reddit",
}

func shareProviderLabel(provider string) string {
	if l, ok := shareProviderLabels[provider]; ok {
		return l
	}
	return provider
}

// shareButtonPath returns the path of the share endpoint for the options.
func shareButtonPath(o *sharer.Options) string {
	query := url.Values{}
	for _, name := range sharer.OptionNames {
		if name == sharer.OptionProvider {
			continue
		}
		if v := o.Raw(name); v != "" {
			query.Set(name, v)
		}
	}
	return sharePath + "/" + url.PathEscape(o.Provider()) + "?" + query.Encode()
}

// renderShareButton writes a share link carrying all options as data-sharer
// attributes. Without script it falls back to the share endpoint.
func (a *sharerApp) renderShareButton(hb *htmlbuilder.HtmlBuilder, o *sharer.Options) {
	if o == nil || !a.providerEnabled(o.Provider()) {
		return
	}
	attrs := []any{
		"href", a.cfg.Server.PublicAddress + shareButtonPath(o),
		"class", "button share-button",
		"target", "_blank",
		"rel", "noopener nofollow",
	}
	for _, name := range sharer.OptionNames {
		if v := o.Raw(name); v != "" {
			attrs = append(attrs, sharer.Attribute(name), v)
		}
	}
	hb.WriteElementOpen("a", attrs...)
	hb.WriteEscaped(shareProviderLabel(o.Provider()))
	hb.WriteElementClose("a")
}

func (a *sharerApp) renderShareButtons(hb *htmlbuilder.HtmlBuilder, values map[string]string) {
	hb.WriteElementOpen("nav", "class", "share-buttons")
	for _, provider := range a.cfg.Providers {
		o := sharer.NewOptions(values)
		o.Set(sharer.OptionProvider, provider)
		a.renderShareButton(hb, o)
	}
	hb.WriteElementClose("nav")
}

func (a *sharerApp) serveShareIndex(w http.ResponseWriter, r *http.Request) {
	o := shareOptionsFromRequest(r)
	if o.Raw(sharer.OptionURL) == "" {
		serveError(w, r, sharer.ErrInvalidConfiguration.Error()+": missing url", http.StatusBadRequest)
		return
	}
	values := map[string]string{}
	for _, name := range sharer.OptionNames {
		if v := o.Raw(name); v != "" {
			values[name] = v
		}
	}
	title := a.plainText(o.Raw(sharer.OptionTitle))
	if title == "" {
		title = o.Raw(sharer.OptionURL)
	}
	a.renderPage(w, "Share "+title, func(hb *htmlbuilder.HtmlBuilder) {
		hb.WriteElementOpen("h1")
		hb.WriteEscaped("Share " + title)
		hb.WriteElementClose("h1")
		a.renderShareButtons(hb, values)
	})
}

// servePopupPage answers a popup share with a page that opens the popup and
// links to the share target as fallback for blocked popups.
func (a *sharerApp) servePopupPage(w http.ResponseWriter, s *sharer.Sharer, p *sharePopup) {
	provider := shareProviderLabel(s.Value(sharer.OptionProvider))
	title := a.plainText(s.Value(sharer.OptionTitle))
	if title == "" {
		title = s.Value(sharer.OptionURL)
	}
	a.renderPage(w, "Share on "+provider, func(hb *htmlbuilder.HtmlBuilder) {
		hb.WriteElementOpen("p")
		hb.WriteElementOpen("a", "id", "shareLink", "href", p.url, "target", "_blank", "rel", "noopener")
		hb.WriteEscaped("Share " + title + " on " + provider)
		hb.WriteElementsClose("a", "p")
		hb.WriteElementOpen("script")
		hb.WriteUnescaped(popupScript(p))
		hb.WriteElementClose("script")
	})
}

func popupScript(p *sharePopup) string {
	u, _ := json.Marshal(p.url)
	f, _ := json.Marshal(p.features.String())
	script := "(function(){var w=window.open(" + string(u) + ",''," + string(f) + ");"
	if p.focus {
		script += "if(w&&window.focus){w.focus();}"
	}
	return script + "})();"
}

func (a *sharerApp) renderPage(w http.ResponseWriter, title string, body func(hb *htmlbuilder.HtmlBuilder)) {
	w.Header().Set("Content-Type", contenttype.HTMLUTF8)
	mw := a.min.Writer(contenttype.HTML, w)
	hb := htmlbuilder.NewHtmlBuilder(mw)
	hb.WriteUnescaped("<!doctype html>")
	hb.WriteElementOpen("html", "lang", "en")
	hb.WriteElementOpen("meta", "charset", "utf-8")
	hb.WriteElementOpen("meta", "name", "viewport", "content", "width=device-width,initial-scale=1")
	hb.WriteElementOpen("meta", "name", "robots", "content", "noindex")
	hb.WriteElementOpen("title")
	hb.WriteEscaped(title)
	hb.WriteElementClose("title")
	hb.WriteElementOpen("body")
	body(hb)
	hb.WriteElementsClose("body", "html")
	if err := mw.Close(); err != nil {
		a.error("Failed to write page", zap.Error(err))
	}
}
