package shared

import (
	"fmt"
)

type InvalidTicketCountError struct {
	Count int
}

func (err InvalidTicketCountError) Error() string {
	return fmt.Sprintf("invalid ticket count; expected: > 0, given: %d", err.Count)
}
