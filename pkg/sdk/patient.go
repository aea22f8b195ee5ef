package sdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// BookingInput is an appointment request. The booking endpoint lives under
// the legacy /user prefix, which the backend keeps for patient accounts.
type BookingInput struct {
	DiseaseCategory string     `json:"diseaseCategory" validate:"required"`
	Symptoms        string     `json:"symptoms" validate:"required"`
	Details         string     `json:"details,omitempty"`
	PreferredDate   string     `json:"preferredDate" validate:"required"`
	PreferredStart  string     `json:"preferredStart,omitempty"`
	PreferredEnd    string     `json:"preferredEnd,omitempty"`
	Documents       []Document `json:"documents,omitempty"`
	DoctorID        string     `json:"doctorId,omitempty"`
}

// CancelInput withdraws an appointment with a reason.
type CancelInput struct {
	Reason string `json:"reason" validate:"required"`
}

// RescheduleInput requests a new slot for an appointment.
type RescheduleInput struct {
	NewDate  string `json:"newDate" validate:"required"`
	NewStart string `json:"newStart,omitempty"`
	NewEnd   string `json:"newEnd,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// PatientProfileInput updates the caller's medical profile.
type PatientProfileInput struct {
	Name             string            `json:"name,omitempty"`
	Age              int               `json:"age,omitempty" validate:"gte=0,lte=150"`
	Gender           string            `json:"gender,omitempty"`
	DiseaseType      string            `json:"diseaseType,omitempty"`
	Symptoms         string            `json:"symptoms,omitempty"`
	MedicalHistory   string            `json:"medicalHistory,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

// PatientDashboard fetches the caller's upcoming visits, history, and stats.
func (c *Client) PatientDashboard(ctx context.Context) (*PatientDashboard, error) {
	var dashboard PatientDashboard
	if err := c.do(ctx, http.MethodGet, "/patient/dashboard", nil, nil, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

// PatientDoctors lists doctors available to book.
func (c *Client) PatientDoctors(ctx context.Context) ([]Doctor, error) {
	var doctors []Doctor
	if err := c.do(ctx, http.MethodGet, "/patient/doctors", nil, nil, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// PatientAppointments lists the caller's appointments.
func (c *Client) PatientAppointments(ctx context.Context) ([]Appointment, error) {
	var appointments []Appointment
	if err := c.do(ctx, http.MethodGet, "/patient/appointments", nil, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// BookAppointment submits a new appointment request. The clinic team assigns
// a doctor afterwards unless one was chosen up front.
func (c *Client) BookAppointment(ctx context.Context, input BookingInput) error {
	if err := c.checkInput(input); err != nil {
		return err
	}
	if input.PreferredStart != "" && input.PreferredEnd != "" && input.PreferredStart >= input.PreferredEnd {
		return fmt.Errorf("invalid input: preferred start %q is not before end %q", input.PreferredStart, input.PreferredEnd)
	}
	return c.do(ctx, http.MethodPost, "/user/appointments", nil, input, nil)
}

// CancelAppointment withdraws one of the caller's appointments.
func (c *Client) CancelAppointment(ctx context.Context, appointmentID string, input CancelInput) error {
	if err := c.checkInput(input); err != nil {
		return err
	}
	body := struct {
		Action string `json:"action"`
		CancelInput
	}{Action: "cancel", CancelInput: input}
	return c.patchPatientAppointment(ctx, appointmentID, body)
}

// RescheduleAppointment asks for a new slot for one of the caller's
// appointments.
func (c *Client) RescheduleAppointment(ctx context.Context, appointmentID string, input RescheduleInput) error {
	if err := c.checkInput(input); err != nil {
		return err
	}
	if input.Reason == "" {
		input.Reason = "Requested by patient"
	}
	body := struct {
		Action string `json:"action"`
		RescheduleInput
	}{Action: "reschedule", RescheduleInput: input}
	return c.patchPatientAppointment(ctx, appointmentID, body)
}

func (c *Client) patchPatientAppointment(ctx context.Context, appointmentID string, body any) error {
	path := fmt.Sprintf("/patient/appointments/%s", url.PathEscape(appointmentID))
	return c.do(ctx, http.MethodPatch, path, nil, body, nil)
}

// PatientProfile fetches the caller's account and medical profile.
func (c *Client) PatientProfile(ctx context.Context) (*PatientProfileData, error) {
	var data PatientProfileData
	if err := c.do(ctx, http.MethodGet, "/patient/profile", nil, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// UpdatePatientProfile saves the caller's medical profile.
func (c *Client) UpdatePatientProfile(ctx context.Context, input PatientProfileInput) error {
	if err := c.checkInput(input); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/patient/profile", nil, input, nil)
}

// MatchesCategory reports whether a doctor's specialization serves the given
// disease category. General matches every doctor; the other categories match
// on the specialization prefix families the booking screen uses.
func MatchesCategory(doctor Doctor, category string) bool {
	if category == "" {
		return false
	}
	spec := strings.ToLower(doctor.Profile.Specialization)
	cat := strings.ToLower(category)
	if cat == "general" {
		return true
	}
	if strings.Contains(spec, cat) {
		return true
	}
	prefixes := map[string]string{
		"cardiology":  "cardio",
		"dermatology": "derma",
		"ent":         "ent",
		"neurology":   "neuro",
		"orthopedics": "ortho",
		"pediatrics":  "pedi",
	}
	prefix, ok := prefixes[cat]
	return ok && strings.Contains(spec, prefix)
}

// DiseaseCategories are the booking form's category choices.
var DiseaseCategories = []string{
	"Cardiology", "Dermatology", "ENT", "Neurology", "Orthopedics", "Pediatrics", "General", "Other",
}
