package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

func morningClock() time.Time {
	return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
}

func testEngine() *Engine {
	return &Engine{
		UserName: "Priya",
		Now:      morningClock,
		Doctors: []sdk.Doctor{
			{ID: "d1", Name: "Carter", Profile: sdk.DoctorProfile{Specialization: "Cardiologist"}},
			{ID: "d2", Name: "Singh", Profile: sdk.DoctorProfile{Specialization: "General Physician"}},
		},
	}
}

func TestGreetingUsesNameAndTimeOfDay(t *testing.T) {
	reply := testEngine().Respond("hello there")
	assert.Contains(t, reply.Text, "Priya")
	assert.Contains(t, reply.Text, "healthy morning")
	assert.False(t, reply.Done)
}

func TestGreetingEveningContext(t *testing.T) {
	engine := testEngine()
	engine.Now = func() time.Time { return time.Date(2026, 8, 28, 19, 0, 0, 0, time.UTC) }
	reply := engine.Respond("good evening")
	assert.Contains(t, reply.Text, "productive day")
}

func TestBookingFlowAdvancesSteps(t *testing.T) {
	engine := testEngine()

	first := engine.Respond("I want to book a visit")
	assert.Contains(t, first.Text, "general physician or a specialist")

	second := engine.Respond("a general appointment please")
	assert.Contains(t, second.Text, "9 AM, 2 PM, and 6 PM")

	third := engine.Respond("book the 9 AM one")
	assert.Contains(t, third.Text, "hbctl patient book")
}

func TestBookingFlowSpecialistBranch(t *testing.T) {
	engine := testEngine()
	engine.Respond("book me in")
	reply := engine.Respond("a specific schedule works")
	assert.Contains(t, reply.Text, "Cardiology, Neurology, Orthopedics")
}

func TestDoctorReplyListsRealDoctors(t *testing.T) {
	reply := testEngine().Respond("what doctor should I see")
	assert.Contains(t, reply.Text, "Dr. Carter")
	assert.Contains(t, reply.Text, "Cardiologist")
}

func TestDoctorReplyWithoutData(t *testing.T) {
	engine := &Engine{UserName: "Priya", Now: morningClock}
	reply := engine.Respond("find me a physician")
	assert.Contains(t, reply.Text, "checking our doctor database")
}

func TestEmergencyReply(t *testing.T) {
	reply := testEngine().Respond("it's urgent, I need care now")
	assert.Contains(t, reply.Text, "911")
}

func TestSymptomReplyMapsToSpecialist(t *testing.T) {
	reply := testEngine().Respond("I have a migraine and I'm feeling awful")
	assert.Contains(t, reply.Text, "neurologist")

	reply = testEngine().Respond("my vision is blurry and my eye hurts")
	assert.Contains(t, reply.Text, "ophthalmologist")
}

func TestStatusReplyWithUpcoming(t *testing.T) {
	date := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	engine := testEngine()
	engine.Appointments = []sdk.Appointment{
		{
			ID:             "a1",
			Status:         sdk.StatusConfirmed,
			PreferredDate:  &date,
			PreferredStart: "10:00 AM",
			Doctor:         &sdk.Doctor{Name: "Carter"},
		},
	}
	reply := engine.Respond("any upcoming visits?")
	assert.Contains(t, reply.Text, "tomorrow")
	assert.Contains(t, reply.Text, "Dr. Carter")
	assert.Contains(t, reply.Text, "10:00 AM")
}

func TestProfileReply(t *testing.T) {
	reply := testEngine().Respond("who am i")
	assert.Contains(t, reply.Text, "Priya")
	assert.Contains(t, reply.Text, "Heart Beat")
}

func TestFarewellEndsSession(t *testing.T) {
	reply := testEngine().Respond("thanks, goodbye")
	assert.True(t, reply.Done)
	assert.Contains(t, reply.Text, "Priya")
}

func TestRepeatAvoidance(t *testing.T) {
	engine := testEngine()
	first := engine.Respond("it's urgent")
	second := engine.Respond("it's urgent")
	assert.NotEqual(t, first.Text, second.Text)
	assert.Contains(t, second.Text, "Let me approach this differently")
}

func TestHelpRotatesVariants(t *testing.T) {
	engine := testEngine()
	first := engine.Respond("what can you do")
	second := engine.Respond("what can you do")
	assert.NotEqual(t, first.Text, second.Text)
}
