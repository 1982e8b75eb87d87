package minify

import (
	"io"
	"sync"

	"github.com/tdewolff/minify/v2"
	mHtml "github.com/tdewolff/minify/v2/html"
	mJs "github.com/tdewolff/minify/v2/js"
	mJson "github.com/tdewolff/minify/v2/json"
	"go.goblog.app/sharer/pkgs/contenttype"
)

type Minifier struct {
	i sync.Once
	m *minify.M
}

func (m *Minifier) init() {
	m.i.Do(func() {
		m.m = minify.New()
		// HTML, including inline scripts
		m.m.AddFunc(contenttype.HTML, mHtml.Minify)
		m.m.AddFunc(contenttype.JS, mJs.Minify)
		m.m.AddFunc("text/javascript", mJs.Minify)
		// JSON
		m.m.AddFunc(contenttype.JSON, mJson.Minify)
	})
}

func (m *Minifier) Get() *minify.M {
	m.init()
	return m.m
}

// Writer returns a writer that minifies everything written to w as
// mediatype. It has to be closed to flush the output.
func (m *Minifier) Writer(mediatype string, w io.Writer) io.WriteCloser {
	return m.Get().Writer(mediatype, w)
}

// MinifyString minifies s, returning s unchanged if that fails.
func (m *Minifier) MinifyString(mediatype, s string) string {
	res, err := m.Get().String(mediatype, s)
	if err != nil {
		return s
	}
	return res
}
