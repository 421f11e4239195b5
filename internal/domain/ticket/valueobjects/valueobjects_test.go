package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr bool
	}{
		{name: "low", input: "low", want: PriorityLow},
		{name: "medium", input: "medium", want: PriorityMedium},
		{name: "high", input: "high", want: PriorityHigh},
		{name: "uppercase rejected", input: "HIGH", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "unknown rejected", input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid priority")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{name: "open", input: "open", want: StatusOpen},
		{name: "in progress", input: "in_progress", want: StatusInProgress},
		{name: "closed", input: "closed", want: StatusClosed},
		{name: "resolved is not a status", input: "resolved", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestValueLists(t *testing.T) {
	assert.Equal(t, []string{"low", "medium", "high"}, PriorityValues())
	assert.Equal(t, []string{"open", "in_progress", "closed"}, TicketStatusValues())
}
