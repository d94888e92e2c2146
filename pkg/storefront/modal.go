package storefront

import "github.com/darksworm/lumina/pkg/model"

// Placeholder is shown for any missing optional detail field.
const Placeholder = "—"

// ModalState is either Closed or Open.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
)

// ClickTarget is what a click inside the modal layer landed on.
type ClickTarget int

const (
	// TargetBackdrop is the dimmed area around the content box.
	TargetBackdrop ClickTarget = iota
	// TargetContent is anywhere inside the content box.
	TargetContent
	// TargetClose is the dedicated close control.
	TargetClose
)

// Detail holds the text fields displayed by the modal.
type Detail struct {
	Image       string
	ImageAlt    string
	Title       string
	Description string
	Playtime    string
	Price       string
	Weight      string
	Volume      string
	Available   string
}

// Modal is the product detail overlay. Every method is a no-op on a nil
// *Modal, for pages that have no modal.
type Modal struct {
	state   ModalState
	detail  Detail
	product model.Product
}

// NewModal creates a closed modal
func NewModal() *Modal {
	return &Modal{}
}

// Open fills the detail fields from p and shows the modal.
func (m *Modal) Open(p model.Product) {
	if m == nil {
		return
	}
	m.product = p
	m.detail = Detail{
		Image:       p.Image,
		ImageAlt:    p.Title,
		Title:       p.Title,
		Description: orPlaceholder(p.Description),
		Playtime:    orPlaceholder(p.Playtime),
		Price:       orPlaceholder(p.Price),
		Weight:      orPlaceholder(p.Weight),
		Volume:      orPlaceholder(p.Volume),
		Available:   orPlaceholder(p.Available),
	}
	m.state = ModalOpen
}

// Close hides the modal. Detail fields stay until the next Open.
func (m *Modal) Close() {
	if m == nil {
		return
	}
	m.state = ModalClosed
}

// Click handles a click on the modal layer. Only the backdrop itself and the
// close control close it; clicks inside the content box are ignored.
func (m *Modal) Click(target ClickTarget) {
	if m == nil || m.state != ModalOpen {
		return
	}
	switch target {
	case TargetBackdrop, TargetClose:
		m.Close()
	}
}

// IsOpen reports whether the modal is visible
func (m *Modal) IsOpen() bool {
	return m != nil && m.state == ModalOpen
}

// State returns the current state
func (m *Modal) State() ModalState {
	if m == nil {
		return ModalClosed
	}
	return m.state
}

// Detail returns the displayed fields
func (m *Modal) Detail() Detail {
	if m == nil {
		return Detail{}
	}
	return m.detail
}

// Product returns the record the modal was last opened with
func (m *Modal) Product() model.Product {
	if m == nil {
		return model.Product{}
	}
	return m.product
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
