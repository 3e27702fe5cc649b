package dataimporter

import (
	"github.com/travigo/trainsim/pkg/network"
)

// LoadGraph builds a graph from a connections file, then applies the
// station delays file if one is given. Delays can only be attached to
// stations the connections file created.
func LoadGraph(connectionsPath string, stationsPath string) (*network.Graph, error) {
	graph := network.NewGraph()

	if _, err := LoadConnectionsFile(connectionsPath, graph); err != nil {
		return nil, err
	}

	if stationsPath != "" {
		if _, err := LoadStationsFile(stationsPath, graph); err != nil {
			return nil, err
		}
	}

	return graph, nil
}
