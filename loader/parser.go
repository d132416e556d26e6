// Package loader reads networks and run configurations from disk.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rhartert/maxbw/network"
)

// ErrSyntax is returned when a network description cannot be parsed.
var ErrSyntax = errors.New("loader: syntax error")

// Network is the content of a network file.
type Network struct {
	NumNodes int
	Edges    []network.Edge
}

// Digraph builds the directed graph described by the network. If
// bidirectional is true, each edge is also added in the reverse direction.
func (n *Network) Digraph(bidirectional bool) (*network.Digraph, error) {
	edges := n.Edges
	if bidirectional {
		edges = network.Bidirectional(edges)
	}
	return network.NewDigraph(edges, n.NumNodes)
}

// ParseNetworkFile parses the network file at the given path. See
// ParseNetwork for the expected format.
func ParseNetworkFile(filepath string) (*Network, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseNetwork(file)
}

// ParseNetwork parses a network description. The first line holds the number
// of nodes, and each following line describes one edge as
//
//	from to type bandwidth length
//
// separated by whitespace. Empty lines and lines starting with '#' are
// ignored.
func ParseNetwork(r io.Reader) (*Network, error) {
	scanner := bufio.NewScanner(r)

	nw := &Network{NumNodes: -1}
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		parts := strings.Fields(text)

		if nw.NumNodes < 0 {
			if len(parts) != 1 {
				return nil, fmt.Errorf("%w: line %d: want number of nodes, got %q", ErrSyntax, line, text)
			}
			n, err := strconv.Atoi(parts[0])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: line %d: invalid number of nodes %q", ErrSyntax, line, parts[0])
			}
			nw.NumNodes = n
			continue
		}

		e, err := parseEdge(parts, nw.NumNodes)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrSyntax, line, err)
		}
		nw.Edges = append(nw.Edges, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if nw.NumNodes < 0 {
		return nil, fmt.Errorf("%w: missing number of nodes", ErrSyntax)
	}

	return nw, nil
}

func parseEdge(parts []string, nNodes int) (network.Edge, error) {
	if len(parts) != 5 {
		return network.Edge{}, fmt.Errorf("want 5 fields, got %d", len(parts))
	}
	from, err := parseNode(parts[0], nNodes)
	if err != nil {
		return network.Edge{}, err
	}
	to, err := parseNode(parts[1], nNodes)
	if err != nil {
		return network.Edge{}, err
	}
	bw, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return network.Edge{}, fmt.Errorf("invalid bandwidth %q", parts[3])
	}
	length, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil {
		return network.Edge{}, fmt.Errorf("invalid length %q", parts[4])
	}
	return network.Edge{
		From:      from,
		To:        to,
		Type:      parts[2],
		Bandwidth: bw,
		Length:    length,
	}, nil
}

func parseNode(s string, nNodes int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid node %q", s)
	}
	if v < 0 || nNodes <= v {
		return 0, fmt.Errorf("node %d is not between 0 and %d", v, nNodes-1)
	}
	return v, nil
}
