package languages

// System defines the interface for language registry operations.
//
// List returns every supported translation target in display order.
// Find looks up a language by its BCP 47 code.
// Resolve matches a free-form value against codes and display names,
// returning the canonical entry when one exists.
type System interface {
	Handler() *Handler
	List() []Language
	Find(code string) (*Language, error)
	Resolve(value string) (*Language, error)
}
