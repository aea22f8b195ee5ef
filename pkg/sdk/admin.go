package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateDoctorInput is the admin "add doctor" form.
type CreateDoctorInput struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Specialization string `json:"specialization" validate:"required"`
	Experience     int    `json:"experience,omitempty" validate:"gte=0"`
	Education      string `json:"education,omitempty"`
	Description    string `json:"description,omitempty"`
}

// AppointmentFilter narrows an admin appointment listing. Zero values mean
// "no filter".
type AppointmentFilter struct {
	Date   string
	Doctor string
	Status AppointmentStatus
}

func (f AppointmentFilter) query() url.Values {
	q := url.Values{}
	if f.Date != "" {
		q.Set("date", f.Date)
	}
	if f.Doctor != "" {
		q.Set("doctor", f.Doctor)
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	return q
}

// AssignAppointmentInput pins an appointment to a doctor and a schedule slot.
type AssignAppointmentInput struct {
	DoctorID       string `json:"doctorId" validate:"required"`
	ScheduledDate  string `json:"scheduledDate,omitempty"`
	ScheduledStart string `json:"scheduledStart,omitempty"`
	ScheduledEnd   string `json:"scheduledEnd,omitempty"`
}

// AssignResult reports the outcome of an assignment, including the backend's
// warning when the slot falls outside the doctor's availability.
type AssignResult struct {
	Message             string `json:"message"`
	AvailabilityWarning bool   `json:"availabilityWarning"`
}

// AdminDoctors lists every doctor account.
func (c *Client) AdminDoctors(ctx context.Context) ([]Doctor, error) {
	var doctors []Doctor
	if err := c.do(ctx, http.MethodGet, "/admin/doctors", nil, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// CreateDoctor registers a doctor account on the patient's behalf.
func (c *Client) CreateDoctor(ctx context.Context, input CreateDoctorInput) (*Doctor, error) {
	if err := c.checkInput(input); err != nil {
		return nil, err
	}
	var env struct {
		Doctor *Doctor `json:"doctor"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/doctors", nil, input, &env); err != nil {
		return nil, err
	}
	return env.Doctor, nil
}

// SetDoctorStatus activates or deactivates a doctor account.
func (c *Client) SetDoctorStatus(ctx context.Context, doctorID string, active bool) error {
	path := fmt.Sprintf("/admin/doctors/%s/status", url.PathEscape(doctorID))
	body := map[string]bool{"isActive": active}
	return c.do(ctx, http.MethodPatch, path, nil, body, nil)
}

// DeleteDoctor removes a doctor account.
func (c *Client) DeleteDoctor(ctx context.Context, doctorID string) error {
	path := fmt.Sprintf("/admin/doctors/%s", url.PathEscape(doctorID))
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// AdminPatients lists every registered patient.
func (c *Client) AdminPatients(ctx context.Context) ([]Patient, error) {
	var patients []Patient
	if err := c.do(ctx, http.MethodGet, "/admin/patients", nil, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// AdminAppointments lists appointments, optionally filtered.
func (c *Client) AdminAppointments(ctx context.Context, filter AppointmentFilter) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.do(ctx, http.MethodGet, "/admin/appointments", filter.query(), nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// AssignAppointment hands an appointment to a doctor with a schedule.
func (c *Client) AssignAppointment(ctx context.Context, appointmentID string, input AssignAppointmentInput) (*AssignResult, error) {
	if err := c.checkInput(input); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/admin/appointments/%s/assign", url.PathEscape(appointmentID))
	var result AssignResult
	if err := c.do(ctx, http.MethodPost, path, nil, input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetAppointmentStatus moves an appointment to the given status.
func (c *Client) SetAppointmentStatus(ctx context.Context, appointmentID string, status AppointmentStatus) error {
	path := fmt.Sprintf("/admin/appointments/%s", url.PathEscape(appointmentID))
	body := map[string]AppointmentStatus{"status": status}
	return c.do(ctx, http.MethodPatch, path, nil, body, nil)
}
