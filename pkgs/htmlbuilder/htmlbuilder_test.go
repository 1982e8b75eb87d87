package htmlbuilder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHtmlBuilder(t *testing.T) {
	var sb strings.Builder
	hb := NewHtmlBuilder(&sb)

	hb.WriteElementOpen("a", "href", "/share?a=1&b=2", "data-sharer", "twitter", "hidden", false, "download", true, "tabindex", 0, "skip", nil, "dangling")
	hb.WriteEscaped("<Share>")
	hb.WriteElementClose("a")
	hb.WriteElement("div", "id", "x")

	assert.Equal(t, `<a href="/share?a=1&amp;b=2" data-sharer="twitter" download tabindex=0>&lt;Share&gt;</a><div id="x"></div>`, sb.String())
}

func TestWriteElementsOpenClose(t *testing.T) {
	var sb strings.Builder
	hb := NewHtmlBuilder(&sb)

	hb.WriteElementsOpen("html", "body")
	hb.WriteElementsClose("body", "html")

	assert.Equal(t, "<html><body></body></html>", sb.String())
}
