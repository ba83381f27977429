// Package loader reads bulk reference data files.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"autobid/internal/domain/entity"
	"autobid/internal/util"

	"github.com/pkg/errors"
)

const locationFieldCount = 4

// ParseLocationCSV reads region,province,city,barangay rows.
// Blank lines and records with fewer than four fields are skipped. The first
// record is a header when its first field is "region".
func ParseLocationCSV(r io.Reader) ([]entity.LocationRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var rows []entity.LocationRow
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read location csv")
		}

		if blank(record) {
			continue
		}

		if first {
			first = false
			if isHeader(record) {
				continue
			}
		}

		if len(record) < locationFieldCount {
			continue
		}

		rows = append(rows, entity.LocationRow{
			Region:   util.NormalizeName(record[0]),
			Province: util.NormalizeName(record[1]),
			City:     util.NormalizeName(record[2]),
			Barangay: util.NormalizeName(record[3]),
		})
	}

	return rows, nil
}

func blank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(util.NormalizeName(record[0]), "region")
}

// LoadLocationFile opens path and parses it with ParseLocationCSV.
func LoadLocationFile(path string) ([]entity.LocationRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return ParseLocationCSV(file)
}
