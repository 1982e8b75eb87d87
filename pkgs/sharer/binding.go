package sharer

// AttributePrefix is the prefix of all attributes a bound sharer reads. The
// provider itself is the bare prefix, every other option is suffixed with
// "-" and its name, e.g. data-sharer-url.
const AttributePrefix = "data-sharer"

// Attribute returns the attribute name for an option.
func Attribute(option string) string {
	if option == OptionProvider {
		return AttributePrefix
	}
	return AttributePrefix + "-" + option
}

// observedOptions are kept in sync with their attributes after binding.
var observedOptions = []string{OptionTitle, OptionURL, OptionTo}

// Attributes gives access to the attributes of the bound element.
type Attributes interface {
	Get(name string) string
	// Observe calls fn with the new value whenever the attribute changes
	// and returns a func to stop observing.
	Observe(name string, fn func(value string)) (unobserve func())
}

// Scope is the lifetime of a bound element.
type Scope interface {
	OnDestroy(fn func())
}

// OptionsFromAttributes reads all known options from attrs.
func OptionsFromAttributes(attrs Attributes) *Options {
	o := NewOptions(nil)
	for _, name := range OptionNames {
		if v := attrs.Get(Attribute(name)); v != "" {
			o.Set(name, v)
		}
	}
	return o
}

// Bind creates a sharer from the attributes of el, keeps title, url and to
// up to date and tears everything down when scope is destroyed.
func Bind(el Element, attrs Attributes, scope Scope, w Window) (*Sharer, error) {
	s, err := New(el, OptionsFromAttributes(attrs), w)
	if err != nil {
		return nil, err
	}
	unobservers := make([]func(), 0, len(observedOptions))
	for _, name := range observedOptions {
		name := name
		unobservers = append(unobservers, attrs.Observe(Attribute(name), func(value string) {
			s.SetValue(name, value)
		}))
	}
	if scope != nil {
		scope.OnDestroy(func() {
			s.Destroy()
			for _, unobserve := range unobservers {
				if unobserve != nil {
					unobserve()
				}
			}
		})
	}
	return s, nil
}
