package sharer

// Resolve turns the current options into a share target. It returns false if
// the provider is unknown, which callers treat as "nothing to do".
func Resolve(o *Options) (*Target, bool) {
	p, ok := lookupProvider(o.Raw(OptionProvider))
	if !ok {
		return nil, false
	}
	width, height := o.size()
	return &Target{
		Provider: p.name,
		ShareURL: p.shareURL(o),
		Params:   p.params(o),
		IsLink:   p.isLink,
		Width:    width,
		Height:   height,
	}, true
}
