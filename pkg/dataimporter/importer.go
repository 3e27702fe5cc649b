package dataimporter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/network"
)

var ErrMissingField = errors.New("missing field")

const (
	connectionsHeader = "from,to,colour,direction\n"
	stationsHeader    = "name,probability\n"
)

func setupCSVReader() {
	// Allow us to report records with missing columns rather than fail the file
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})
}

func decode(reader io.Reader, header string, destination interface{}) error {
	setupCSVReader()

	return gocsv.Unmarshal(io.MultiReader(strings.NewReader(header), reader), destination)
}

// LoadConnections adds one link (and its mirror) per connection record.
// Rejected records are logged and returned in the report, only a file
// that cannot be parsed as CSV at all is an error.
func LoadConnections(reader io.Reader, graph *network.Graph) (Report, error) {
	var records []ConnectionRecord
	if err := decode(reader, connectionsHeader, &records); err != nil {
		return Report{}, err
	}

	report := Report{Records: len(records)}

	for i, record := range records {
		from := strings.TrimSpace(record.From)
		to := strings.TrimSpace(record.To)
		colour := strings.TrimSpace(record.Colour)
		directionToken := strings.TrimSpace(record.Direction)

		if from == "" || to == "" || colour == "" || directionToken == "" {
			report.fail(i+1, fmt.Errorf("connection record %d: %w", i+1, ErrMissingField))
			continue
		}

		direction, err := network.ParseDirection(directionToken)
		if err != nil {
			report.fail(i+1, fmt.Errorf("connection record %d: %w", i+1, err))
			continue
		}

		graph.AddLink(from, to, colour, direction)
		report.Imported++
	}

	return report, nil
}

// LoadStations sets the delay probability of stations that already exist
// in the graph. Unknown stations are reported with network.ErrNotFound.
func LoadStations(reader io.Reader, graph *network.Graph) (Report, error) {
	var records []StationRecord
	if err := decode(reader, stationsHeader, &records); err != nil {
		return Report{}, err
	}

	report := Report{Records: len(records)}

	for i, record := range records {
		name := strings.TrimSpace(record.Name)
		probabilityToken := strings.TrimSpace(record.Probability)

		if name == "" || probabilityToken == "" {
			report.fail(i+1, fmt.Errorf("station record %d: %w", i+1, ErrMissingField))
			continue
		}

		probability, err := strconv.ParseFloat(probabilityToken, 64)
		if err != nil {
			report.fail(i+1, fmt.Errorf("station record %d: %w", i+1, err))
			continue
		}

		if err := graph.SetDelay(name, probability); err != nil {
			report.fail(i+1, fmt.Errorf("station record %d: %w", i+1, err))
			continue
		}

		report.Imported++
	}

	return report, nil
}

func LoadConnectionsFile(path string, graph *network.Graph) (Report, error) {
	return loadFile(path, graph, LoadConnections)
}

func LoadStationsFile(path string, graph *network.Graph) (Report, error) {
	return loadFile(path, graph, LoadStations)
}

func loadFile(path string, graph *network.Graph, loader func(io.Reader, *network.Graph) (Report, error)) (Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	log.Info().Str("file", path).Msg("Loading file")

	report, err := loader(file, graph)
	if err != nil {
		log.Error().Str("file", path).Err(err).Msg("Failed to parse csv file")
		return report, err
	}
	report.File = path

	for _, failure := range report.Failures {
		log.Error().Str("file", path).Int("record", failure.Record).Err(failure.Err).Msg("Skipped record")
	}

	log.Info().
		Str("file", path).
		Int("records", report.Records).
		Int("imported", report.Imported).
		Int("failed", len(report.Failures)).
		Msg("Finished file")

	return report, nil
}
