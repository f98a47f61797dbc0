// Package costs implements the storage cost model comparing the
// BLS+Hash lottery against the aggregatable Jack lottery.
package costs

import (
	"code.cloudfoundry.org/bytefmt"
	"go.uber.org/zap"

	"github.com/jacklottery/storage/shared"
)

// Row is the storage comparison for a single number of winning tickets.
type Row struct {
	TicketCount int
	BLSHash     float64
	Jack        float64
	Ratio       float64
}

// Report is an ordered list of rows, one per compared ticket count.
type Report struct {
	Rows []Row
}

// Header returns the column titles, aligned with the fields of Row.
func (*Report) Header() []string {
	return []string{"L", "BLS-H", "Jack", "Ratio"}
}

// BLSHash returns the space, in bytes, needed to store n winning
// tickets of the BLS+Hash lottery. A winning ticket is a single BLS
// signature, and signatures of distinct lotteries cannot be
// aggregated, so the cost grows linearly with n.
func BLSHash(n int) (float64, error) {
	if n <= 0 {
		return 0, shared.InvalidTicketCountError{Count: n}
	}
	return float64(n) * shared.GroupElementSize, nil
}

// Jack returns the space, in bytes, needed to store n winning tickets
// of the Jack lottery. Any number of winning tickets aggregates into a
// single KZG opening proof, one field element and one group element,
// so the cost does not depend on n. The parameter is accepted for
// symmetry with BLSHash and validated only.
func Jack(n int) (float64, error) {
	if n <= 0 {
		return 0, shared.InvalidTicketCountError{Count: n}
	}
	return float64(shared.GroupElementSize + shared.FieldElementSize), nil
}

// BuildReport computes one Row per ticket count, preserving input
// order. It fails on the first non-positive count.
func BuildReport(counts []int, logger *zap.Logger) (*Report, error) {
	report := &Report{Rows: make([]Row, 0, len(counts))}
	for _, n := range counts {
		bls, err := BLSHash(n)
		if err != nil {
			return nil, err
		}
		jack, err := Jack(n)
		if err != nil {
			return nil, err
		}
		row := Row{TicketCount: n, BLSHash: bls, Jack: jack, Ratio: bls / jack}
		report.Rows = append(report.Rows, row)

		logger.Debug("computed storage row",
			zap.Int("tickets", n),
			zap.String("bls-h", bytefmt.ByteSize(uint64(bls))),
			zap.String("jack", bytefmt.ByteSize(uint64(jack))),
			zap.Float64("ratio", row.Ratio),
		)
	}
	return report, nil
}
