package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/trainsim/pkg/network"
	"github.com/travigo/trainsim/pkg/report"
	"github.com/travigo/trainsim/pkg/simulator"
)

var ErrInvalidTrainCount = errors.New("invalid input entered for number of trains")

// Menu is the interactive control loop. It owns all input validation and
// console output, the simulation itself is driven through a Fleet.
type Menu struct {
	In  io.Reader
	Out io.Writer

	Graph       *network.Graph
	Factory     *simulator.Factory
	Parallelism int
}

func (m *Menu) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(m.In)

	m.printf("Enter how many trains to simulate: ")
	input, ok := readLine(scanner)
	if !ok {
		return scanner.Err()
	}

	count, err := parseCount(input)
	if err != nil {
		m.printf("Invalid input entered for number of trains.\n")
		return err
	}

	fleet, err := simulator.NewFleet(m.Graph, m.Factory, count, m.Parallelism)
	if err != nil {
		return err
	}

	log.Debug().Int("trains", count).Msg("Starting interactive simulation")

	for {
		m.printf("\ncontinue simulation [1], train info [2], exit [q].\n")
		m.printf("Select an option: ")

		choice, ok := readLine(scanner)
		if !ok {
			return scanner.Err()
		}

		switch choice {
		case "1":
			if err := fleet.Tick(ctx); err != nil {
				return err
			}
		case "2":
			m.printf("which train [1 - %d]: ", count)

			trainChoice, ok := readLine(scanner)
			if !ok {
				return scanner.Err()
			}

			number, err := strconv.Atoi(trainChoice)
			if err != nil || number < 1 || number > count {
				m.printf("Incorrect train number provided!\n")
				continue
			}

			m.printf("\n%s\n", report.Format(fleet.Summaries()[number-1]))
		case "q":
			m.printf("Thank you and Goodbye!\n")
			return nil
		default:
			m.printf("Invalid option provided. Try again\n")
		}
	}
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.Out, format, args...)
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(scanner.Text()), true
}

// parseCount accepts digits only, so signs and blanks are rejected
func parseCount(input string) (int, error) {
	if input == "" {
		return 0, ErrInvalidTrainCount
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, ErrInvalidTrainCount
		}
	}

	count, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTrainCount, err)
	}

	return count, nil
}
