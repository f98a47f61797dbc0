package shared

// Sizes of compressed BLS12-381 elements, in bytes. All storage costs
// are accounted in these units.
const (
	// FieldElementSize is the size of a scalar field element.
	FieldElementSize = 32

	// GroupElementSize is the size of a G1 group element. A BLS
	// signature is a single G1 element.
	GroupElementSize = 48
)

// DefaultTicketCounts returns the ticket counts the storage report
// compares. A fresh slice is returned on every call.
func DefaultTicketCounts() []int {
	return []int{1, 16, 256, 1024, 2048}
}
