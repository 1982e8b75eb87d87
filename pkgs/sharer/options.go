package sharer

import (
	"strings"

	"github.com/spf13/cast"
)

// Option names
const (
	OptionProvider    = "provider"
	OptionURL         = "url"
	OptionTitle       = "title"
	OptionHashtag     = "hashtag"
	OptionVia         = "via"
	OptionSubject     = "subject"
	OptionTo          = "to"
	OptionWidth       = "width"
	OptionHeight      = "height"
	OptionWeb         = "web"
	OptionImage       = "image"
	OptionDescription = "description"
)

// OptionNames lists every option a sharer understands, in attribute order.
var OptionNames = []string{
	OptionProvider, OptionTitle, OptionURL, OptionWidth, OptionHeight, OptionWeb,
	OptionHashtag, OptionVia, OptionSubject, OptionTo, OptionImage, OptionDescription,
}

const (
	DefaultWidth  = 600
	DefaultHeight = 480
)

// Options is the option bag of a single sharer. An absent key and an empty
// value are treated the same.
type Options struct {
	values map[string]string
}

func NewOptions(values map[string]string) *Options {
	o := &Options{values: make(map[string]string, len(values))}
	for k, v := range values {
		o.values[k] = v
	}
	return o
}

func (o *Options) Set(name, value string) {
	if o.values == nil {
		o.values = map[string]string{}
	}
	o.values[name] = value
}

// Raw returns the stored value without any normalization.
func (o *Options) Raw(name string) string {
	if o == nil {
		return ""
	}
	return o.values[name]
}

// Get returns the value as used for building share links. The facebook
// hashtag is prefixed with "#" when missing.
func (o *Options) Get(name string) string {
	val := o.Raw(name)
	if val != "" && name == OptionHashtag && providerKey(o.Raw(OptionProvider)) == "facebook" {
		if !strings.HasPrefix(val, "#") {
			return "#" + val
		}
	}
	return val
}

// Provider returns the provider name in its lookup form.
func (o *Options) Provider() string {
	return providerKey(o.Raw(OptionProvider))
}

func (o *Options) validate() error {
	for _, name := range []string{OptionURL, OptionProvider} {
		if o.Raw(name) == "" {
			return &missingOptionError{name: name}
		}
	}
	return nil
}

// size returns the configured popup size, falling back to the defaults for
// missing or unusable values.
func (o *Options) size() (width, height int) {
	return positiveOr(o.Get(OptionWidth), DefaultWidth), positiveOr(o.Get(OptionHeight), DefaultHeight)
}

func positiveOr(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := cast.ToIntE(strings.TrimSpace(s))
	if err != nil || i <= 0 {
		return def
	}
	return i
}

type missingOptionError struct {
	name string
}

func (e *missingOptionError) Error() string {
	return ErrInvalidConfiguration.Error() + ": missing " + e.name
}

func (e *missingOptionError) Unwrap() error {
	return ErrInvalidConfiguration
}
