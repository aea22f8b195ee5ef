package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// UpdateAppointmentInput is a doctor's partial update: a status transition,
// a note for the patient, or both.
type UpdateAppointmentInput struct {
	Status AppointmentStatus `json:"status,omitempty"`
	Notes  string            `json:"notes,omitempty"`
}

// DoctorProfileInput updates the caller's practice details.
type DoctorProfileInput struct {
	Name            string  `json:"name,omitempty"`
	Specialization  string  `json:"specialization,omitempty"`
	Experience      int     `json:"experience,omitempty" validate:"gte=0"`
	Education       string  `json:"education,omitempty"`
	Description     string  `json:"description,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty" validate:"gte=0"`
	Location        string  `json:"location,omitempty"`
}

// AvailabilityInput replaces the caller's availability calendar wholesale.
type AvailabilityInput struct {
	Availability      []AvailabilitySlot `json:"availability"`
	EmergencyHolidays []string           `json:"emergencyHolidays,omitempty"`
}

// DoctorDashboard fetches the caller's stats, profile, and upcoming visits.
func (c *Client) DoctorDashboard(ctx context.Context) (*DoctorDashboard, error) {
	var dashboard DoctorDashboard
	if err := c.do(ctx, http.MethodGet, "/doctor/dashboard", nil, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// DoctorAppointments lists the caller's appointments, optionally filtered by
// status.
func (c *Client) DoctorAppointments(ctx context.Context, status AppointmentStatus) ([]Appointment, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	var appointments []Appointment
	if err := c.do(ctx, http.MethodGet, "/doctor/appointments", q, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// UpdateDoctorAppointment applies a status transition or note to one of the
// caller's appointments.
func (c *Client) UpdateDoctorAppointment(ctx context.Context, appointmentID string, input UpdateAppointmentInput) error {
	path := fmt.Sprintf("/doctor/appointments/%s", url.PathEscape(appointmentID))
	return c.do(ctx, http.MethodPatch, path, nil, input, nil)
}

// DoctorPatients lists the patients under the caller's care.
func (c *Client) DoctorPatients(ctx context.Context) ([]Patient, error) {
	var patients []Patient
	if err := c.do(ctx, http.MethodGet, "/doctor/patients", nil, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// UpdateDoctorProfile saves the caller's practice details.
func (c *Client) UpdateDoctorProfile(ctx context.Context, input DoctorProfileInput) error {
	if err := c.checkInput(input); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/doctor/profile", nil, input, nil)
}

// UpdateAvailability saves the caller's availability calendar.
func (c *Client) UpdateAvailability(ctx context.Context, input AvailabilityInput) error {
	return c.do(ctx, http.MethodPut, "/doctor/availability", nil, input, nil)
}
