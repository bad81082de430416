package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatOrderLine(t *testing.T) {
	ev := OrderPlacedEvent{
		OrderID:     12,
		OrderNumber: "T000012",
		ConcertID:   3,
		ArtistName:  "The Strokes",
		VenueName:   "Olympia",
		VenueCity:   "Paris",
		TicketType:  "vip",
		Quantity:    2,
		TotalPrice:  "3000.00",
		Customer:    "Anna K",
		PlacedAt:    "2026-09-01T10:00:00Z",
	}
	line := formatOrderLine(ev)
	assert.Contains(t, line, "order=T000012")
	assert.Contains(t, line, `artist="The Strokes"`)
	assert.Contains(t, line, "total=3000.00")
	assert.Contains(t, line, "qty=2")
	assert.Equal(t, byte('\n'), line[len(line)-1])
}

func TestHandleMessageRejectsBadPayload(t *testing.T) {
	assert.Error(t, handleMessage([]byte("{not json")))
}

func TestEventRoundTripKeepsOrderNumber(t *testing.T) {
	in := OrderPlacedEvent{OrderID: 5, OrderNumber: "T000005", TotalPrice: "4500.00"}
	body, err := json.Marshal(in)
	require.NoError(t, err)
	var out OrderPlacedEvent
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, in, out)
}
