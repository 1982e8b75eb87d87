package htmlbuilder

import (
	"fmt"
	"io"
	textTemplate "text/template"
)

type HtmlBuilder struct {
	w io.Writer
}

func NewHtmlBuilder(w io.Writer) *HtmlBuilder {
	return &HtmlBuilder{
		w: w,
	}
}

func (h *HtmlBuilder) Write(p []byte) (int, error) {
	return h.w.Write(p)
}

func (h *HtmlBuilder) WriteString(s string) (int, error) {
	return io.WriteString(h.w, s)
}

func (h *HtmlBuilder) WriteUnescaped(s string) {
	_, _ = h.WriteString(s)
}

func (h *HtmlBuilder) WriteEscaped(s string) {
	textTemplate.HTMLEscape(h, []byte(s))
}

// WriteAttribute writes a single attribute. A true bool is written as a bare
// attribute, false and nil values are skipped.
func (h *HtmlBuilder) WriteAttribute(attr string, val any) {
	switch v := val.(type) {
	case nil:
		return
	case bool:
		if v {
			h.WriteUnescaped(` `)
			h.WriteUnescaped(attr)
		}
		return
	case string:
		h.WriteUnescaped(` `)
		h.WriteUnescaped(attr)
		h.WriteUnescaped(`="`)
		h.WriteEscaped(v)
		h.WriteUnescaped(`"`)
	default:
		h.WriteUnescaped(` `)
		h.WriteUnescaped(attr)
		h.WriteUnescaped(`=`)
		h.WriteEscaped(fmt.Sprint(v))
	}
}

// WriteElementOpen writes an opening tag. Attributes are passed as
// alternating name and value.
func (h *HtmlBuilder) WriteElementOpen(tag string, attrs ...any) {
	h.WriteUnescaped(`<`)
	h.WriteUnescaped(tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		attrStr, ok := attrs[i].(string)
		if !ok {
			continue
		}
		h.WriteAttribute(attrStr, attrs[i+1])
	}
	h.WriteUnescaped(`>`)
}

func (h *HtmlBuilder) WriteElementsOpen(tags ...string) {
	for _, tag := range tags {
		h.WriteElementOpen(tag)
	}
}

func (h *HtmlBuilder) WriteElementClose(tag string) {
	h.WriteUnescaped(`</`)
	h.WriteUnescaped(tag)
	h.WriteUnescaped(`>`)
}

func (h *HtmlBuilder) WriteElementsClose(tags ...string) {
	for _, tag := range tags {
		h.WriteElementClose(tag)
	}
}

// WriteElement writes an empty element with opening and closing tag.
func (h *HtmlBuilder) WriteElement(tag string, attrs ...any) {
	h.WriteElementOpen(tag, attrs...)
	h.WriteElementClose(tag)
}
