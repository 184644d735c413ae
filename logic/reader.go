package logic

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/ocstools/ncimport/models"
)

// RecordFieldCount - a data row carries exactly these columns:
// login, display name, password, email, groups, group admin for, quota
const RecordFieldCount = 7

var validate = validator.New()

// ReadRecords - parses the delimited input file into user records. The
// first row is a header and skipped. The whole file is read and checked
// before anything is returned, so a malformed row anywhere aborts the
// run before the first remote call. Login names are normalized.
func ReadRecords(path string, delimiter rune) ([]models.UserRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening csv file %s", path)
	}
	defer file.Close()
	return parseRecords(file, delimiter)
}

func parseRecords(r io.Reader, delimiter rune) ([]models.UserRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	// column count is checked per row so the error can carry it
	reader.FieldsPerRecord = -1

	var records []models.UserRecord
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading csv row %d", row+1)
		}
		row++
		if row == 1 {
			continue // header
		}
		if len(fields) != RecordFieldCount {
			return nil, &ValidationError{Row: row, Login: fields[0], Columns: len(fields)}
		}
		record := models.UserRecord{
			LoginName:     NormalizeLogin(fields[0]),
			DisplayName:   fields[1],
			Password:      fields[2],
			Email:         fields[3],
			Groups:        fields[4],
			GroupAdminFor: fields[5],
			Quota:         fields[6],
		}
		if err := validate.Struct(&record); err != nil {
			return nil, &ValidationError{Row: row, Login: record.LoginName, Columns: RecordFieldCount, Reason: err.Error()}
		}
		records = append(records, record)
	}
	return records, nil
}
