// Maintained by hand in the layout sqlc v1.29.0 emits for sqlc.yaml.
// Running sqlc generate overwrites it; keep queries/ and this file in step.
// source: contract_number_sequences.sql

package sqlc

import (
	"context"
)

const nextContractNumberSeq = `-- name: NextContractNumberSeq :one
INSERT INTO contract_number_sequences (year, last_seq)
VALUES (
    $1,
    COALESCE((
        SELECT MAX(split_part(contract_number, '-', 3)::int)
        FROM contracts
        WHERE contract_number LIKE $2::text
    ), 0) + 1
)
ON CONFLICT (year) DO UPDATE SET last_seq = contract_number_sequences.last_seq + 1
RETURNING last_seq
`

type NextContractNumberSeqParams struct {
	Year          int32
	NumberPattern string
}

// The first call for a year seeds the counter from numbers already issued.
func (q *Queries) NextContractNumberSeq(ctx context.Context, db DBTX, arg NextContractNumberSeqParams) (int32, error) {
	row := db.QueryRow(ctx, nextContractNumberSeq, arg.Year, arg.NumberPattern)
	var last_seq int32
	err := row.Scan(&last_seq)
	return last_seq, err
}
