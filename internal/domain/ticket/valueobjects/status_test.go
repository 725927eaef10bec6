package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTicketStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    TicketStatus
		wantErr bool
	}{
		{in: "Open", want: StatusOpen},
		{in: "in progress", want: StatusInProgress},
		{in: "in_progress", want: StatusInProgress},
		{in: " RESOLVED ", want: StatusResolved},
		{in: "Closed", want: StatusClosed},
		{in: "Pending", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTicketStatus(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTicketStatus_IsSettableByStaff(t *testing.T) {
	assert.True(t, StatusOpen.IsSettableByStaff())
	assert.True(t, StatusInProgress.IsSettableByStaff())
	assert.True(t, StatusResolved.IsSettableByStaff())
	assert.False(t, StatusClosed.IsSettableByStaff())
}

func TestTicketStatus_IsFinished(t *testing.T) {
	assert.False(t, StatusOpen.IsFinished())
	assert.False(t, StatusInProgress.IsFinished())
	assert.True(t, StatusResolved.IsFinished())
	assert.True(t, StatusClosed.IsFinished())
}
