package sharer

import (
	"fmt"
	"strings"
)

// Screen describes the area popups are centred on.
type Screen struct {
	X, Y          int
	Width, Height int
}

// Features are the window features a popup is requested with.
type Features struct {
	Width      int  `json:"width" yaml:"width"`
	Height     int  `json:"height" yaml:"height"`
	Left       int  `json:"left" yaml:"left"`
	Top        int  `json:"top" yaml:"top"`
	Scrollbars bool `json:"scrollbars" yaml:"scrollbars"`
	Toolbar    bool `json:"toolbar" yaml:"toolbar"`
	Menubar    bool `json:"menubar" yaml:"menubar"`
}

// String formats the features as a window.open feature list.
func (f Features) String() string {
	return strings.Join([]string{
		"scrollbars=" + yesNo(f.Scrollbars),
		"toolbar=" + yesNo(f.Toolbar),
		"menubar=" + yesNo(f.Menubar),
		fmt.Sprintf("width=%d", f.Width),
		fmt.Sprintf("height=%d", f.Height),
		fmt.Sprintf("top=%d", f.Top),
		fmt.Sprintf("left=%d", f.Left),
	}, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Popup is a window opened by Window.Open.
type Popup interface {
	Focus()
}

// Window is the host environment a share action is performed in.
type Window interface {
	// Screen returns the geometry popups are centred on.
	Screen() Screen
	// Navigate replaces the current location.
	Navigate(url string)
	// Open requests a new window. Blocked popups are reported as nil.
	Open(url string, features Features) Popup
	// CanFocus reports whether opened popups may be brought to front.
	CanFocus() bool
}

// Dispatch performs the share action described by t. Nothing happens for a
// nil target.
func Dispatch(w Window, t *Target) {
	if w == nil || t == nil {
		return
	}
	u := t.URL()
	if t.IsLink {
		w.Navigate(u)
		return
	}
	popup := w.Open(u, PopupFeatures(w.Screen(), t.Width, t.Height))
	if popup != nil && w.CanFocus() {
		popup.Focus()
	}
}

// PopupFeatures returns the features of a chrome-less popup of the given size
// centred on s. Half pixels are truncated the way browsers parse them.
func PopupFeatures(s Screen, width, height int) Features {
	return Features{
		Width:  width,
		Height: height,
		Left:   (s.Width-width)/2 + s.X,
		Top:    (s.Height-height)/2 + s.Y,
	}
}
