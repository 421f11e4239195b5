package valueobjects

import "slices"

// TicketStatus is where a ticket is in its lifecycle. Any status may move to
// any other.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

var ticketStatuses = []TicketStatus{StatusOpen, StatusInProgress, StatusClosed}

func NewTicketStatus(s string) (TicketStatus, error) {
	return parseEnum("ticket status", s, ticketStatuses)
}

func (ts TicketStatus) String() string { return string(ts) }

func (ts TicketStatus) IsValid() bool { return slices.Contains(ticketStatuses, ts) }

// TicketStatusValues lists the accepted values in lifecycle order.
func TicketStatusValues() []string {
	return strs(ticketStatuses)
}
