package model

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	// Page is the active highest level page model. They represent a complete standalone "page" or "screen" that occupies the entire
	// window with the exception of the header and footer.
	Page Page
	// KeyZone defines which area is active and accepting user keyboard inputs.
	KeyZone KeyZone

	// --------- h
	// | Upper | e
	// |-------- i
	// |content| g
	// |-------- h
	// | Lower | t
	// ---------
	// W i d t h
	Upper  int
	Lower  int
	Height int
	Width  int
}

// ContentHeight is the space left between the header and footer.
func (v ViewState) ContentHeight() int {
	return max(0, v.Height-v.Upper-v.Lower)
}

type Page int

const (
	PageMain Page = iota
	PageHelp
)

// KeyZone defines the distinct areas of the ui in which the keyboard can be interacted with.
// Only one zone, with the addition of the default global zone, will be active at any one time.
type KeyZone int

const (
	// KZpage scrolls the page and handles navigation keys.
	KZpage KeyZone = iota
	// KZmenu is the open section menu.
	KZmenu
	// KZcontactForm sends all typing to the focused contact form field.
	KZcontactForm
)
