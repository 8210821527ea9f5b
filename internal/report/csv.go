package report

import (
	"io"

	"github.com/gocarina/gocsv"

	"driverpay/internal/domain/payroll"
)

func CSV(w io.Writer, res payroll.Result) error {
	lines := Lines(res)
	return gocsv.Marshal(&lines, w)
}
