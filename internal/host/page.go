package host

// Page is an ordered collection of elements.
type Page struct {
	name     string
	elements []*Element
}

// NewPage returns an empty page.
func NewPage(name string) *Page {
	return &Page{name: name}
}

func (p *Page) Name() string { return p.name }

// Add appends els in order.
func (p *Page) Add(els ...*Element) {
	p.elements = append(p.elements, els...)
}

// Elements returns every element in document order.
func (p *Page) Elements() []*Element {
	dup := make([]*Element, len(p.elements))
	copy(dup, p.elements)
	return dup
}

// QuerySelectorAll returns the elements tagged tag.
func (p *Page) QuerySelectorAll(tag string) []*Element {
	var out []*Element
	for _, el := range p.elements {
		if el.tag == tag {
			out = append(out, el)
		}
	}
	return out
}

// Find returns the element with id.
func (p *Page) Find(id string) (*Element, bool) {
	for _, el := range p.elements {
		if el.id == id {
			return el, true
		}
	}
	return nil, false
}
