package format

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/xtensor/xgraph"
)

// ParseTSV decodes a TSV edge-list input: lines beginning
// with '%' are headers; the second header line's third whitespace-
// separated field carries the vertex count; every remaining non-header
// line is "from_index to_index" with 1-based indices, recorded as the
// directed edge (from-1, to-1).
func ParseTSV(r io.Reader) (*xgraph.Graph, error) {
	scanner := bufio.NewScanner(r)

	var headerCount int
	numVert := -1
	var edges [][2]int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "%") {
			headerCount++
			if headerCount == 2 {
				fields := strings.Fields(line)
				if len(fields) < 3 {
					return nil, ErrMalformedInput
				}
				n, err := strconv.Atoi(fields[2])
				if err != nil {
					return nil, ErrMalformedInput
				}
				numVert = n
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, ErrMalformedInput
		}
		from, errFrom := strconv.Atoi(fields[0])
		to, errTo := strconv.Atoi(fields[1])
		if errFrom != nil || errTo != nil {
			return nil, ErrMalformedInput
		}
		edges = append(edges, [2]int{from - 1, to - 1})
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, err
	}
	if numVert < 0 {
		return nil, ErrMalformedInput
	}

	b, err := xgraph.NewBuilder(numVert, xgraph.WithDirected(true))
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return b.Freeze()
}
