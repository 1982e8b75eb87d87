package sharer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullOptions(provider string) *Options {
	return NewOptions(map[string]string{
		OptionProvider:    provider,
		OptionURL:         "http://example.com",
		OptionTitle:       "Hello",
		OptionHashtag:     "sale",
		OptionVia:         "acme",
		OptionSubject:     "Look",
		OptionTo:          "a@b.com",
		OptionImage:       "http://example.com/a.png",
		OptionDescription: "A description",
	})
}

func TestResolveShareURLs(t *testing.T) {
	want := map[string]string{
		"facebook": "https://www.facebook.com/sharer/sharer.php",
		"linkedin": "https://www.linkedin.com/shareArticle",
		"twitter":  "https://twitter.com/intent/tweet/",
		"email":    "mailto:a@b.com",
		"gmail":    "https://mail.google.com/mail/",
		"reddit":   "https://www.reddit.com/submit",
	}
	require.Len(t, Providers(), len(want))
	for _, name := range Providers() {
		target, ok := Resolve(fullOptions(name))
		require.True(t, ok, name)
		assert.Equal(t, want[name], target.ShareURL, name)
		assert.Equal(t, name == "email", target.IsLink, name)
	}
}

func TestResolveLinks(t *testing.T) {
	want := map[string]string{
		"facebook": "https://www.facebook.com/sharer/sharer.php?u=http%3A%2F%2Fexample.com&hashtag=%23sale",
		"linkedin": "https://www.linkedin.com/shareArticle?url=http%3A%2F%2Fexample.com&mini=true",
		"twitter":  "https://twitter.com/intent/tweet/?text=Hello&url=http%3A%2F%2Fexample.com&hashtag=sale&via=acme",
		"email":    "mailto:a@b.com?subject=Look&body=Hello%0A%3Ca%20href%3D%22http%3A%2F%2Fexample.com%22%3Ehttp%3A%2F%2Fexample.com%3C%2Fa%3E",
		"gmail":    "https://mail.google.com/mail/?view=cm&to=a%40b.com&su=Look&body=Hello%0Ahttp%3A%2F%2Fexample.com",
		"reddit":   "https://www.reddit.com/submit?url=http%3A%2F%2Fexample.com",
	}
	for name, link := range want {
		target, ok := Resolve(fullOptions(name))
		require.True(t, ok, name)
		assert.Equal(t, link, target.URL(), name)
	}
}

func TestResolveTwitterTarget(t *testing.T) {
	target, ok := Resolve(NewOptions(map[string]string{
		OptionProvider: "twitter",
		OptionURL:      "http://example.com",
		OptionTitle:    "Hello",
		OptionVia:      "acme",
	}))
	require.True(t, ok)

	want := &Target{
		Provider: "twitter",
		ShareURL: "https://twitter.com/intent/tweet/",
		Params: []Param{
			{"text", "Hello"},
			{"url", "http://example.com"},
			{"hashtag", ""},
			{"via", "acme"},
		},
		Width:  600,
		Height: 480,
	}
	if diff := cmp.Diff(want, target); diff != "" {
		t.Fatalf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveHashtag(t *testing.T) {
	target, ok := Resolve(NewOptions(map[string]string{
		OptionProvider: "facebook", OptionURL: "http://x", OptionHashtag: "sale",
	}))
	require.True(t, ok)
	hashtag, _ := target.Param("hashtag")
	assert.Equal(t, "#sale", hashtag)

	target, ok = Resolve(NewOptions(map[string]string{
		OptionProvider: "facebook", OptionURL: "http://x", OptionHashtag: "#sale",
	}))
	require.True(t, ok)
	hashtag, _ = target.Param("hashtag")
	assert.Equal(t, "#sale", hashtag)

	target, ok = Resolve(NewOptions(map[string]string{
		OptionProvider: "twitter", OptionURL: "http://x", OptionHashtag: "sale",
	}))
	require.True(t, ok)
	hashtag, _ = target.Param("hashtag")
	assert.Equal(t, "sale", hashtag)
}

func TestResolveOmitsEmptyParams(t *testing.T) {
	for _, name := range []string{"facebook", "linkedin", "twitter", "reddit"} {
		target, ok := Resolve(NewOptions(map[string]string{
			OptionProvider: name,
			OptionURL:      "http://example.com",
		}))
		require.True(t, ok, name)
		link := target.URL()
		for _, key := range []string{"hashtag", "via", "text"} {
			assert.NotContains(t, link, key+"=", name)
		}
		assert.False(t, strings.HasSuffix(link, "="), name)
		assert.NotContains(t, link, "=&", name)
	}
}

func TestResolveEmailWithoutRecipient(t *testing.T) {
	target, ok := Resolve(NewOptions(map[string]string{
		OptionProvider: "email",
		OptionURL:      "http://x",
	}))
	require.True(t, ok)
	assert.Equal(t, "mailto:", target.ShareURL)
	assert.Equal(t, "mailto:?body=%0A%3Ca%20href%3D%22http%3A%2F%2Fx%22%3Ehttp%3A%2F%2Fx%3C%2Fa%3E", target.URL())
}

func TestResolveUnknownProvider(t *testing.T) {
	target, ok := Resolve(NewOptions(map[string]string{
		OptionProvider: "myspace",
		OptionURL:      "http://example.com",
	}))
	assert.False(t, ok)
	assert.Nil(t, target)
	assert.False(t, IsProvider("myspace"))
}

func TestResolveCaseInsensitive(t *testing.T) {
	target, ok := Resolve(NewOptions(map[string]string{
		OptionProvider: "Twitter",
		OptionURL:      "http://example.com",
	}))
	require.True(t, ok)
	assert.Equal(t, "twitter", target.Provider)
	assert.True(t, IsProvider("REDDIT"))
}

func TestResolveSize(t *testing.T) {
	o := fullOptions("twitter")
	target, _ := Resolve(o)
	assert.Equal(t, 600, target.Width)
	assert.Equal(t, 480, target.Height)

	o.Set(OptionWidth, "800")
	o.Set(OptionHeight, "600")
	target, _ = Resolve(o)
	assert.Equal(t, 800, target.Width)
	assert.Equal(t, 600, target.Height)
}

func TestResolveReadsCurrentOptions(t *testing.T) {
	o := fullOptions("twitter")
	first, _ := Resolve(o)
	o.Set(OptionTitle, "Changed")
	second, _ := Resolve(o)

	text, _ := first.Param("text")
	assert.Equal(t, "Hello", text)
	text, _ = second.Param("text")
	assert.Equal(t, "Changed", text)
}
