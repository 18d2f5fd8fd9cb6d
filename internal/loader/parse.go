package loader

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"familytree/internal/infra/persistence"
	"familytree/pkg/domain"
)

const fieldCount = 4

// ParseRecords reads a data file. Empty lines and lines starting with '#'
// are skipped; every other line must be name;height;father;mother.
func ParseRecords(r io.Reader) ([]domain.Record, error) {
	var records []domain.Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		rec, err := parseFields(Split(text, Delimiter), line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LoadError{Line: line + 1, Reason: ReasonFieldCount}
		}
		return nil, err
	}
	return records, nil
}

// RecordsFromRows validates person table rows the same way as file lines.
func RecordsFromRows(rows []persistence.Row) ([]domain.Record, error) {
	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := parseFields(row.Fields, row.Line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseFields(fields []string, line int) (domain.Record, error) {
	if len(fields) != fieldCount {
		return domain.Record{}, &LoadError{Line: line, Reason: ReasonFieldCount}
	}
	if fields[0] == "" {
		return domain.Record{}, &LoadError{Line: line, Reason: ReasonEmptyName}
	}
	if !IsNumeric(fields[1]) {
		return domain.Record{}, &LoadError{Line: line, Reason: ReasonInvalidHeight}
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return domain.Record{}, &LoadError{Line: line, Reason: ReasonInvalidHeight}
	}
	return domain.Record{
		Name:    fields[0],
		Height:  height,
		Parents: [2]string{fields[2], fields[3]},
		Line:    line,
	}, nil
}
