package components

import (
	"github.com/petitemaison/epouvante/pkg/toast"
	. "github.com/petitemaison/epouvante/pkg/vdom"
)

// Toaster renders pending toasts into a live region. The region is always
// present so assistive technology announces toasts when they appear.
func Toaster(toasts []toast.Toast) *VNode {
	return Div(ID("toaster"), Class("toaster"), Role("status"), AriaLive("polite"),
		Range(toasts, func(t toast.Toast, i int) *VNode {
			return Div(Key(i), Classes("toast", "toast-"+string(t.Level)),
				If(t.Title != "", P(Class("toast-title"), t.Title)),
				If(t.Description != "", P(Class("toast-description"), t.Description)),
			)
		}),
	)
}
