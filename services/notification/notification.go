package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

// MelodyService broadcasts notifications to all connected websocket
// clients.
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder renders booking lifecycle notifications.
type BookingMessageBuilder struct {
	spotName  string
	startDate string
	endDate   string
	event     string
}

func NewBookingMessageBuilder(spotName, startDate, endDate, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		spotName:  spotName,
		startDate: startDate,
		endDate:   endDate,
		event:     event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("Booking %s for %q (%s to %s)", b.event, b.spotName, b.startDate, b.endDate)
}
