package models

import "time"

type PatientEvent struct {
	Event      string    `json:"event"`
	PatientID  string    `json:"patient_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Patient    Patient   `json:"patient"`
}
