package reporting

import (
	"sort"
	"time"
)

// reconcileByDate alinha uma série de métricas ao calendário do período:
// datas do calendário sem nenhuma linha recebem uma linha sintetizada e
// linhas existentes nunca são descartadas, mesmo quando a data delas está
// fora do calendário. O resultado fica ordenado por data ascendente,
// preservando a ordem relativa das linhas de uma mesma data
func reconcileByDate[T any](
	calendar []time.Time,
	rows []T,
	dateOf func(T) string,
	placeholderFor func(time.Time) T,
) []T {
	rowsByDate := make(map[string][]T, len(rows))
	for _, row := range rows {
		date := dateOf(row)
		rowsByDate[date] = append(rowsByDate[date], row)
	}

	calendarByDate := make(map[string]time.Time, len(calendar))
	allDates := make(map[string]struct{}, len(calendar)+len(rowsByDate))
	for _, date := range calendar {
		key := date.Format(time.DateOnly)
		calendarByDate[key] = date
		allDates[key] = struct{}{}
	}
	for date := range rowsByDate {
		allDates[date] = struct{}{}
	}

	orderedDates := make([]string, 0, len(allDates))
	for date := range allDates {
		orderedDates = append(orderedDates, date)
	}
	sort.Strings(orderedDates)

	reconciled := make([]T, 0, len(rows)+len(calendar))
	for _, date := range orderedDates {
		if group, ok := rowsByDate[date]; ok {
			reconciled = append(reconciled, group...)
			continue
		}

		reconciled = append(reconciled, placeholderFor(calendarByDate[date]))
	}

	return reconciled
}

// filterActive mantém apenas as linhas com ao menos uma impressão
func filterActive[T any](rows []T, impressionsOf func(T) int64) []T {
	filtered := make([]T, 0, len(rows))
	for _, row := range rows {
		if impressionsOf(row) > 0 {
			filtered = append(filtered, row)
		}
	}

	return filtered
}
