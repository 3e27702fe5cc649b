package dataimporter

// Connections and stations files have no header row, a header matching
// these tags is added in front of the data before decoding.

type ConnectionRecord struct {
	From      string `csv:"from"`
	To        string `csv:"to"`
	Colour    string `csv:"colour"`
	Direction string `csv:"direction"`
}

type StationRecord struct {
	Name        string `csv:"name"`
	Probability string `csv:"probability"`
}

type Report struct {
	File     string
	Records  int
	Imported int
	Failures []RecordError
}

// RecordError is a rejected record, Record counts from 1
type RecordError struct {
	Record int
	Err    error
}

func (e RecordError) Error() string {
	return e.Err.Error()
}

func (e RecordError) Unwrap() error {
	return e.Err
}

func (r *Report) fail(record int, err error) {
	r.Failures = append(r.Failures, RecordError{Record: record, Err: err})
}
