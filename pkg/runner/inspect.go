package runner

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/travigo/trainsim/pkg/network"
	"golang.org/x/exp/slices"
)

// Inspect dumps every station of the graph, in creation order unless
// sorted is set
func Inspect(out io.Writer, graph *network.Graph, sorted bool) error {
	names := graph.Stations()
	if sorted {
		slices.Sort(names)
	}

	for _, name := range names {
		station, err := graph.Find(name)
		if err != nil {
			return err
		}

		if _, err := pretty.Fprintf(out, "%# v\n", *station); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "%d stations, lines %v\n", graph.Len(), graph.Colours())
	return err
}
