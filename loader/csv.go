package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/anyburl-go/anyburl/kg"
)

// LoadTriplesCSV reads subject,relation,object[,timestamp] rows from path
// into a slice of kg.Triple. A row with a fourth column is parsed as a
// timestamped triple; rows with exactly three columns are plain facts.
func LoadTriplesCSV(path string) ([]kg.Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseTriplesCSV(f)
}

func parseTriplesCSV(r io.Reader) ([]kg.Triple, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var triples []kg.Triple
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch len(record) {
		case 3:
			triples = append(triples, kg.New(record[0], record[1], record[2]))
		case 4:
			ts, err := strconv.ParseFloat(record[3], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidRow, err)
			}
			triples = append(triples, kg.NewTemporal(record[0], record[1], record[2], ts))
		default:
			return nil, ErrInvalidRow
		}
	}
	return triples, nil
}
