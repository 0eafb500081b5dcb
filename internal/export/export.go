// Package export renders the address collection into the formats offered
// for download or clipboard pasting. All functions are pure; writing the
// result anywhere is the caller's business.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/designedbycarl/adressbuch/internal/webserver/model"
)

const (
	CSVFileName  = "Adressen_Export.csv"
	XLSXFileName = "Adressen_Export.xlsx"
	SheetName    = "Adressen"
)

var header = []string{"Vorname", "Nachname", "Straße", "Hausnummer", "PLZ", "Stadt", "Land"}

func columns(a model.Address) []string {
	return []string{a.FirstName, a.LastName, a.Street, a.HouseNumber, a.ZipCode, a.City, a.Country}
}

// CSV renders the addresses as comma-separated UTF-8 text with every field
// double-quoted, one row per address below the header, rows terminated
// with \n.
func CSV(addresses []model.Address) []byte {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(header, ","))
	for _, address := range addresses {
		buf.WriteByte('\n')
		for i, field := range columns(address) {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(field)
			buf.WriteByte('"')
		}
	}

	return buf.Bytes()
}

// TSV renders the addresses tab-separated, the shape spreadsheet
// applications accept from the clipboard.
func TSV(addresses []model.Address) []byte {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(header, "\t"))
	for _, address := range addresses {
		buf.WriteByte('\n')
		buf.WriteString(strings.Join(columns(address), "\t"))
	}

	return buf.Bytes()
}

// XLSX renders the addresses as a spreadsheet workbook with a single
// "Adressen" sheet holding the header row and one row per address.
func XLSX(addresses []model.Address) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	index, err := workbook.NewSheet(SheetName)
	if err != nil {
		return nil, err
	}
	workbook.SetActiveSheet(index)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	rows := [][]string{header}
	for _, address := range addresses {
		rows = append(rows, columns(address))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := workbook.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FormatAddress renders a single address as a one-line string for
// clipboard copying.
func FormatAddress(a model.Address) string {
	return fmt.Sprintf("%s %s, %s %s, %s %s, %s",
		a.FirstName, a.LastName, a.Street, a.HouseNumber, a.ZipCode, a.City, a.Country)
}
