package sharer

// Element is the trigger a sharer listens on.
type Element interface {
	// OnClick registers handler and returns a func that removes exactly
	// this registration.
	OnClick(handler func()) (remove func())
}

// Sharer turns an element into a share button.
type Sharer struct {
	el      Element
	w       Window
	options *Options
	remove  func()
}

// New creates a sharer for el. Options are owned by the sharer from now on
// and read on every click, so later changes through SetValue are honored.
func New(el Element, options *Options, w Window) (*Sharer, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}
	s := &Sharer{
		el:      el,
		w:       w,
		options: options,
	}
	if el != nil {
		s.remove = el.OnClick(s.Share)
	}
	return s, nil
}

// SetValue updates a single option.
func (s *Sharer) SetValue(name, value string) {
	s.options.Set(name, value)
}

// Value returns the option as it would be used for the share link.
func (s *Sharer) Value(name string) string {
	return s.options.Get(name)
}

// Target resolves the current options.
func (s *Sharer) Target() (*Target, bool) {
	return Resolve(s.options)
}

// Share opens the share dialog or navigates to the share link. Unknown
// providers are ignored.
func (s *Sharer) Share() {
	t, ok := s.Target()
	if !ok {
		return
	}
	Dispatch(s.w, t)
}

// Destroy removes the click handler.
func (s *Sharer) Destroy() {
	if s.remove != nil {
		s.remove()
		s.remove = nil
	}
}
