package sparsematrix

import "github.com/katalvlaran/xtensor/extensor"

// AddCoding embeds a length-nrows vector of extensors into a {0,1} matrix:
// the returned Matrix's (i,j) entry is coding[i] wherever adj[i,j]=1 and
// zero elsewhere. The row index drives the coding, not the column — this
// encodes the source vertex of each directed edge. Every stored 1 in row i
// maps to the *same* extensor.Extensor value; since Extensor is immutable,
// entries safely share that value rather than cloning it per column, which
// is a large allocation win on dense rows.
func AddCoding(adj *Matrix[uint8], coding []extensor.Extensor) (*Matrix[extensor.Extensor], error) {
	if len(coding) != adj.nrows {
		return nil, ErrDimensionMismatch
	}

	out := &Matrix[extensor.Extensor]{
		nrows: adj.nrows,
		ncols: adj.ncols,
		rows:  make(map[int][]Entry[extensor.Extensor], len(adj.rows)),
		ring:  ExtensorRing,
	}
	for i, entries := range adj.rows {
		c := coding[i]
		if c.IsZero() {
			continue
		}
		row := make([]Entry[extensor.Extensor], 0, len(entries))
		for _, e := range entries {
			row = append(row, Entry[extensor.Extensor]{Col: e.Col, Val: c})
		}
		if len(row) > 0 {
			out.rows[i] = row
		}
	}
	return out, nil
}
