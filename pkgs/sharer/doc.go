// Package sharer turns an element into a "share this" button.
//
// Options are resolved into a provider specific Target (see Resolve) which is
// then either opened as a centred popup or navigated to (see Dispatch). The
// element, its attributes and the browser window are provided by the host
// through the Element, Attributes, Scope and Window interfaces.
package sharer
