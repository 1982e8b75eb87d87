package sharer

import "golang.org/x/text/cases"

type provider struct {
	name     string
	isLink   bool
	shareURL func(o *Options) string
	params   func(o *Options) []Param
}

func staticURL(u string) func(*Options) string {
	return func(*Options) string { return u }
}

var providers = []*provider{
	{
		name:     "facebook",
		shareURL: staticURL("https://www.facebook.com/sharer/sharer.php"),
		params: func(o *Options) []Param {
			return []Param{
				{"u", o.Get(OptionURL)},
				{"hashtag", o.Get(OptionHashtag)},
			}
		},
	},
	{
		name:     "linkedin",
		shareURL: staticURL("https://www.linkedin.com/shareArticle"),
		params: func(o *Options) []Param {
			return []Param{
				{"url", o.Get(OptionURL)},
				{"mini", "true"},
			}
		},
	},
	{
		name:     "twitter",
		shareURL: staticURL("https://twitter.com/intent/tweet/"),
		params: func(o *Options) []Param {
			return []Param{
				{"text", o.Get(OptionTitle)},
				{"url", o.Get(OptionURL)},
				{"hashtag", o.Get(OptionHashtag)},
				{"via", o.Get(OptionVia)},
			}
		},
	},
	{
		name:   "email",
		isLink: true,
		shareURL: func(o *Options) string {
			return "mailto:" + o.Get(OptionTo)
		},
		params: func(o *Options) []Param {
			u := o.Get(OptionURL)
			return []Param{
				{"subject", o.Get(OptionSubject)},
				{"body", o.Get(OptionTitle) + "\n" + `<a href="` + u + `">` + u + `</a>`},
			}
		},
	},
	{
		name:     "gmail",
		shareURL: staticURL("https://mail.google.com/mail/"),
		params: func(o *Options) []Param {
			return []Param{
				{"view", "cm"},
				{"to", o.Get(OptionTo)},
				{"su", o.Get(OptionSubject)},
				{"body", o.Get(OptionTitle) + "\n" + o.Get(OptionURL)},
			}
		},
	},
	{
		name:     "reddit",
		shareURL: staticURL("https://www.reddit.com/submit"),
		params: func(o *Options) []Param {
			return []Param{
				{"url", o.Get(OptionURL)},
			}
		},
	},
}

var providersByName = func() map[string]*provider {
	m := make(map[string]*provider, len(providers))
	for _, p := range providers {
		m[p.name] = p
	}
	return m
}()

// Providers returns the names of all supported providers in table order.
func Providers() []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.name)
	}
	return names
}

// IsProvider reports whether name (in any case) is a supported provider.
func IsProvider(name string) bool {
	_, ok := lookupProvider(name)
	return ok
}

func lookupProvider(name string) (*provider, bool) {
	p, ok := providersByName[providerKey(name)]
	return p, ok
}

func providerKey(name string) string {
	return cases.Fold().String(name)
}
