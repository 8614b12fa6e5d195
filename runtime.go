package emberruntime

// ElemTag names the element type of an array at the printing boundary.
// Arrays themselves are generic; the tag is the side channel the
// compiler supplies so the printer can render elements in Ember's
// literal syntax.
type ElemTag string

const (
	TagInt    ElemTag = "int"
	TagFloat  ElemTag = "float"
	TagDouble ElemTag = "double"
	TagBool   ElemTag = "bool"
	TagString ElemTag = "string"
)

// Sequence is the printer-facing view of an array value. array.Array
// implements it; the printer walks elements through it without knowing
// the element type.
type Sequence interface {
	Len() int
	Item(i int) any
}
