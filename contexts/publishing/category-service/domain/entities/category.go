package entities

// Category is reference data: posts point at it, nobody owns it.
type Category struct {
	ID   string
	Name string
}
