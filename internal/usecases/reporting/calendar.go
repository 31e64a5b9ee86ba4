package reporting

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidRange indica um período cuja data inicial é posterior à final
var ErrInvalidRange = errors.New("período inválido: data inicial posterior à data final")

// ExpandCalendar gera a lista densa de datas entre startDate e endDate
// (inclusive). Um período de um único dia gera uma única data
func ExpandCalendar(startDate, endDate string) ([]time.Time, error) {
	start, err := time.Parse(time.DateOnly, startDate)
	if err != nil {
		return nil, errors.Wrap(err, "data inicial inválida")
	}

	end, err := time.Parse(time.DateOnly, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "data final inválida")
	}

	if start.After(end) {
		return nil, ErrInvalidRange
	}

	var dates []time.Time
	currentDate := start
	for !currentDate.After(end) {
		dates = append(dates, currentDate)
		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return dates, nil
}
