package host

// BeforeInitializeMsg announces that el is about to build its editor.
type BeforeInitializeMsg struct {
	Element *Element
}

// InitializeMsg announces that el has started initialising. Its editor may
// still be missing when the message arrives.
type InitializeMsg struct {
	Element *Element
}

// ContentLoadedMsg announces that the current page finished loading.
type ContentLoadedMsg struct{}

// NavigateMsg announces a client-side navigation to Page.
type NavigateMsg struct {
	Page *Page
}

type initialDelayMsg struct {
	element *Element
}

type rescanMsg struct{}
