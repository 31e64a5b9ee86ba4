package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandCalendar(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		expected  []string
		wantErr   error
	}{
		{
			name:      "Período de vários dias - gera todas as datas inclusive as pontas",
			startDate: "2024-03-01",
			endDate:   "2024-03-04",
			expected:  []string{"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04"},
		},
		{
			name:      "Período de um único dia - gera uma única data",
			startDate: "2024-03-10",
			endDate:   "2024-03-10",
			expected:  []string{"2024-03-10"},
		},
		{
			name:      "Período cruzando a virada do mês",
			startDate: "2024-02-28",
			endDate:   "2024-03-01",
			expected:  []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name:      "Data inicial posterior à final - retorna ErrInvalidRange",
			startDate: "2024-03-05",
			endDate:   "2024-03-01",
			wantErr:   ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := ExpandCalendar(tt.startDate, tt.endDate)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, dates)
				return
			}

			require.NoError(t, err)

			formatted := make([]string, 0, len(dates))
			for _, date := range dates {
				formatted = append(formatted, date.Format(time.DateOnly))
			}
			assert.Equal(t, tt.expected, formatted)
		})
	}
}

func TestExpandCalendarDataInvalida(t *testing.T) {
	_, err := ExpandCalendar("01/03/2024", "2024-03-05")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRange)

	_, err = ExpandCalendar("2024-03-01", "")
	require.Error(t, err)
}
