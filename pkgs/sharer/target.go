package sharer

import (
	"net/url"
	"strings"

	"github.com/samber/lo"
	"go.goblog.app/sharer/pkgs/builderpool"
)

// Param is a single query parameter of a share link.
type Param struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Target is a resolved share action for one provider.
type Target struct {
	Provider string  `json:"provider" yaml:"provider"`
	ShareURL string  `json:"shareUrl" yaml:"shareUrl"`
	Params   []Param `json:"params" yaml:"params"`
	IsLink   bool    `json:"isLink" yaml:"isLink"`
	Width    int     `json:"width" yaml:"width"`
	Height   int     `json:"height" yaml:"height"`
}

// Param returns the value of the param with the given key and whether it
// will be part of the link.
func (t *Target) Param(key string) (string, bool) {
	for _, p := range t.Params {
		if p.Key == key {
			return p.Value, p.Value != ""
		}
	}
	return "", false
}

// URL builds the final link: the share URL followed by all params with a
// value, in declaration order.
func (t *Target) URL() string {
	if len(t.Params) == 0 {
		return t.ShareURL
	}
	kept := lo.Filter(t.Params, func(p Param, _ int) bool {
		return p.Value != ""
	})
	sb := builderpool.GetWithSize(len(t.ShareURL) + 64)
	defer builderpool.Put(sb)
	sb.WriteString(t.ShareURL)
	sb.WriteByte('?')
	for i, p := range kept {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(EncodeURIComponent(p.Value))
	}
	return sb.String()
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers encode URI components:
// spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
