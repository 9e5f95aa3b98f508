package models

import "time"

// SOSRequest is the JSON body of POST /sos/compose.
type SOSRequest struct {
	Name      string  `json:"name" validate:"required"`
	Contact   string  `json:"contact" validate:"omitempty,min=6"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Note      string  `json:"note" validate:"max=280"`
}

// SOSMessage is the composed alert, ready for the client to forward to
// emergency contacts.
type SOSMessage struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
