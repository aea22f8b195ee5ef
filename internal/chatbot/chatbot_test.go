package chatbot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
}

func testEngine() *Engine {
	return &Engine{
		Now: fixedClock,
		Doctors: []sdk.Doctor{
			{ID: "d1", Name: "Carter", Profile: sdk.DoctorProfile{Specialization: "Cardiologist", Experience: 12}},
			{ID: "d2", Name: "Singh", Profile: sdk.DoctorProfile{Specialization: "General Physician", Experience: 8}},
			{ID: "d3", Name: "Lopez", Profile: sdk.DoctorProfile{Specialization: "Pediatrician", Experience: 6}},
			{ID: "d4", Name: "Khan", Profile: sdk.DoctorProfile{Specialization: "Orthopedic Surgeon", Experience: 15}},
		},
	}
}

func TestGreetingOffersQuickActions(t *testing.T) {
	resp := testEngine().Greeting()
	assert.Contains(t, resp.Text, "medical assistant")
	assert.Contains(t, resp.QuickActions, "Book Appointment")
}

func TestBookingRuleShowsSlots(t *testing.T) {
	resp := testEngine().Reply("I want to book an appointment")
	assert.Contains(t, resp.Text, "Today (8/28/2026)")
	assert.Contains(t, resp.Text, "Tomorrow (8/29/2026)")
	assert.Contains(t, resp.Text, "9:00 AM")
	assert.Contains(t, resp.QuickActions, "Urgent Appointment")
}

func TestBookingRuleWinsOverDoctorRule(t *testing.T) {
	// "schedule" and "doctor" both appear; booking is checked first.
	resp := testEngine().Reply("schedule me with a doctor")
	assert.Contains(t, resp.Text, "Step 1")
}

func TestDoctorRuleFiltersBySpecialty(t *testing.T) {
	resp := testEngine().Reply("find me a heart doctor")
	assert.Contains(t, resp.Text, "Dr. Carter")
	assert.NotContains(t, resp.Text, "Dr. Khan")

	resp = testEngine().Reply("I need a bone specialist")
	assert.Contains(t, resp.Text, "Dr. Khan")
	assert.NotContains(t, resp.Text, "Dr. Carter")
}

func TestDoctorRuleCapsUnfilteredListAtThree(t *testing.T) {
	resp := testEngine().Reply("show me a specialist")
	assert.Contains(t, resp.Text, "Dr. Carter")
	assert.Contains(t, resp.Text, "Dr. Lopez")
	assert.NotContains(t, resp.Text, "Dr. Khan")
}

func TestDoctorRuleWithoutDataShowsSpecialtyMenu(t *testing.T) {
	engine := &Engine{Now: fixedClock}
	resp := engine.Reply("find a doctor")
	assert.Contains(t, resp.Text, "Cardiology")
	assert.Contains(t, resp.QuickActions, "Heart Issues")
}

func TestStatusRuleWithUpcomingAppointment(t *testing.T) {
	date := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	engine := testEngine()
	engine.Appointments = []sdk.Appointment{
		{
			ID:             "a1",
			Status:         sdk.StatusConfirmed,
			PreferredDate:  &date,
			PreferredStart: "9:00 AM",
			PreferredEnd:   "9:30 AM",
			Doctor:         &sdk.Doctor{Name: "Carter", Profile: sdk.DoctorProfile{Specialization: "Cardiologist"}},
		},
		{ID: "a2", Status: sdk.StatusPending},
	}

	resp := engine.Reply("status of my upcoming visit")
	assert.Contains(t, resp.Text, "Today")
	assert.Contains(t, resp.Text, "Dr. Carter")
	assert.Contains(t, resp.Text, "1 more upcoming")
}

func TestStatusRuleWithNoAppointments(t *testing.T) {
	resp := testEngine().Reply("show my upcoming visits")
	assert.Contains(t, resp.Text, "don't see any appointments")
	assert.Contains(t, resp.QuickActions, "Book First Appointment")
}

func TestStatusRuleWithOnlyClosedAppointments(t *testing.T) {
	engine := testEngine()
	engine.Appointments = []sdk.Appointment{
		{ID: "a1", Status: sdk.StatusCompleted},
		{ID: "a2", Status: sdk.StatusCancelled},
	}
	resp := engine.Reply("any upcoming visits for me?")
	assert.Contains(t, resp.Text, "don't have any upcoming")
}

func TestEmergencyRule(t *testing.T) {
	resp := testEngine().Reply("this is an emergency")
	assert.Contains(t, resp.Text, "911")
	assert.Contains(t, resp.QuickActions, "Call 911 Now")
}

func TestSymptomRuleDetectsKeyword(t *testing.T) {
	tests := []struct {
		input     string
		specialty string
	}{
		{"I have chest pain", "Cardiology"},
		{"my headache won't stop, I feel sick", "Neurology"},
		{"stomach pain after eating", "Gastroenterology"},
		{"my skin is itchy and I'm feeling bad", "Dermatology"},
	}
	for _, tt := range tests {
		resp := testEngine().Reply(tt.input)
		assert.Contains(t, resp.Text, tt.specialty, "input %q", tt.input)
	}
}

func TestSymptomRuleOrderPrefersFirstMatch(t *testing.T) {
	// chest precedes back in the table, so a message with both goes cardiac.
	resp := testEngine().Reply("pain in my chest and back")
	assert.Contains(t, resp.Text, "Cardiology")
}

func TestMedicalInfoRule(t *testing.T) {
	resp := testEngine().Reply("what is hypertension")
	assert.Contains(t, resp.Text, "educational only")
	assert.Contains(t, resp.QuickActions, "Heart Health")
}

func TestFallbackRule(t *testing.T) {
	resp := testEngine().Reply("asdf qwerty")
	assert.Contains(t, resp.Text, "What can I help you with today?")
	assert.Contains(t, resp.QuickActions, "Find Specialist")
}
