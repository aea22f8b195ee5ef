// Package chatbot is the scripted patient assistant: an ordered list of
// keyword rules over static tables, personalized with the caller's doctors
// and appointments. There is no language model behind it; matching wins, in
// order, the first rule whose keywords appear in the message.
package chatbot

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mahesh-Koilapu/hbctl/internal/format"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

// Response is one scripted reply plus the follow-up suggestions shown under
// it.
type Response struct {
	Text         string
	QuickActions []string
}

// Engine generates replies for one chat session.
type Engine struct {
	Doctors      []sdk.Doctor
	Appointments []sdk.Appointment
	// Now is the clock used for the slot tables; defaults to time.Now.
	Now func() time.Time
}

var todaySlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM", "4:00 PM", "4:30 PM",
	"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM",
}

var tomorrowSlots = []string{
	"8:00 AM", "8:30 AM", "9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM", "2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM",
}

// symptomSpecialties maps a symptom keyword to the specialty to recommend.
// Order matters: the first keyword found in the message wins.
var symptomSpecialties = []struct {
	Symptom   string
	Specialty string
}{
	{"chest", "Cardiology - heart specialist"},
	{"headache", "Neurology - brain and nervous system expert"},
	{"fever", "General Medicine - primary care physician"},
	{"stomach", "Gastroenterology - digestive system specialist"},
	{"back", "Orthopedics - spine and bone specialist"},
	{"cough", "Pulmonology - lung and respiratory expert"},
	{"skin", "Dermatology - skin specialist"},
	{"eye", "Ophthalmology - eye care specialist"},
}

// Greeting is the opening message of every chat session.
func (e *Engine) Greeting() Response {
	return Response{
		Text: "Hello! I'm your medical assistant, here 24/7 for appointment management, " +
			"doctor information, availability, appointment status, medical guidance, and " +
			"emergency support. How can I help you today?",
		QuickActions: []string{"Book Appointment", "Find Doctors", "Check Availability", "Emergency Help"},
	}
}

// Reply runs the message through the rule list and returns the first match.
func (e *Engine) Reply(message string) Response {
	m := strings.ToLower(strings.TrimSpace(message))
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	switch {
	case containsAny(m, "book", "appointment", "schedule", "reserve"):
		return e.bookingReply(now())
	case containsAny(m, "doctor", "specialist", "find", "physician"):
		return e.doctorReply(m)
	case containsAny(m, "my appointment", "status", "upcoming", "scheduled"):
		return e.statusReply(now())
	case containsAny(m, "emergency", "urgent", "help", "911"):
		return emergencyReply()
	case containsAny(m, "symptom", "pain", "feeling", "sick"):
		return symptomReply(m)
	case containsAny(m, "what is", "information", "learn about", "explain"):
		return educationReply()
	default:
		return fallbackReply()
	}
}

func (e *Engine) bookingReply(now time.Time) Response {
	var b strings.Builder
	b.WriteString("Let's book an appointment step by step.\n\n")
	fmt.Fprintf(&b, "Step 1: choose your date.\nToday (%s):\n", now.Format("1/2/2006"))
	writeSlots(&b, todaySlots[:8])
	fmt.Fprintf(&b, "\nTomorrow (%s):\n", now.AddDate(0, 0, 1).Format("1/2/2006"))
	writeSlots(&b, tomorrowSlots[:6])
	b.WriteString("\nStep 2: after choosing your time I'll show you available doctors.\n")
	b.WriteString("Step 3: I'll help you confirm the booking with all the details.\n\n")
	b.WriteString("Which date and time number would you prefer?")
	return Response{
		Text:         b.String(),
		QuickActions: []string{"Today - 9:00 AM", "Today - 2:00 PM", "Today - 6:00 PM", "Tomorrow - 10:00 AM", "Urgent Appointment"},
	}
}

func (e *Engine) doctorReply(m string) Response {
	relevant := e.matchDoctors(m)
	if len(relevant) == 0 {
		return Response{
			Text: "Tell me what type of medical issue you're experiencing and I'll match you " +
				"with the right specialist.\n\nAvailable specialties:\n" +
				"  Cardiology - heart and blood vessels\n" +
				"  Orthopedics - bones and joints\n" +
				"  Neurology - brain and nervous system\n" +
				"  Pediatrics - children's health\n" +
				"  General Medicine - primary care\n" +
				"  Ophthalmology - eye care\n" +
				"  Dentistry - oral health\n\n" +
				"What medical concern do you have?",
			QuickActions: []string{"Heart Issues", "Bone/Joint Pain", "Headaches", "Child Health", "General Check-up", "Eye Problems", "Dental Issues"},
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d qualified doctors for you:\n\n", len(relevant))
	for i, doc := range relevant {
		spec := doc.Profile.Specialization
		if spec == "" {
			spec = "General Physician"
		}
		exp := doc.Profile.Experience
		if exp == 0 {
			exp = 5
		}
		fee := doc.Profile.ConsultationFee
		if fee == 0 {
			fee = 75
		}
		clinic := doc.Profile.Clinic
		if clinic == "" {
			clinic = "Main Clinic"
		}
		fmt.Fprintf(&b, "%d. Dr. %s (%s)\n   %s · %d+ years · $%.0f consultation · %s\n",
			i+1, doc.Name, format.DoctorID(doc.ID), spec, exp, fee, clinic)
	}
	b.WriteString("\nWhich doctor would you like to choose? Reply with the number.")
	return Response{
		Text:         b.String(),
		QuickActions: []string{"Choose Doctor 1", "Choose Doctor 2", "Choose Doctor 3", "Show More Doctors", "Filter by Specialization"},
	}
}

func (e *Engine) matchDoctors(m string) []sdk.Doctor {
	if len(e.Doctors) == 0 {
		return nil
	}
	filters := []struct {
		keywords []string
		prefix   string
	}{
		{[]string{"cardio", "heart"}, "cardio"},
		{[]string{"general", "family"}, "general"},
		{[]string{"pediatric", "child"}, "pediatric"},
		{[]string{"ortho", "bone"}, "ortho"},
	}
	for _, f := range filters {
		if containsAny(m, f.keywords...) {
			var out []sdk.Doctor
			for _, doc := range e.Doctors {
				if strings.Contains(strings.ToLower(doc.Profile.Specialization), f.prefix) {
					out = append(out, doc)
				}
			}
			return out
		}
	}
	if len(e.Doctors) > 3 {
		return e.Doctors[:3]
	}
	return e.Doctors
}

func (e *Engine) statusReply(now time.Time) Response {
	var upcoming []sdk.Appointment
	for _, apt := range e.Appointments {
		if apt.Status == sdk.StatusConfirmed || apt.Status == sdk.StatusPending {
			upcoming = append(upcoming, apt)
		}
	}

	if len(e.Appointments) == 0 {
		return Response{
			Text: "I don't see any appointments in your record. Let's get you scheduled: tell me " +
				"your health concerns, I'll recommend the right specialist, you choose a date " +
				"and time, and we'll finalize the details. Shall we start with your medical concerns?",
			QuickActions: []string{"Book First Appointment", "Learn How It Works", "New Patient Guide", "Talk to Human Assistant"},
		}
	}

	if len(upcoming) == 0 {
		return Response{
			Text: "You don't have any upcoming appointments. I can help you book one: pick a day " +
				"(today, tomorrow, or the weekend), a time of day, and a doctor, and I'll take " +
				"care of the rest. When would you like to schedule your appointment?",
			QuickActions: []string{"Book Today", "Book Tomorrow", "Book This Weekend", "Browse Doctors First"},
		}
	}

	next := upcoming[0]
	var b strings.Builder
	b.WriteString("Here's your next appointment:\n\n")
	fmt.Fprintf(&b, "  Date:   %s\n", relativeDay(next.PreferredDate, now))
	fmt.Fprintf(&b, "  Time:   %s\n", format.TimeRange(next.PreferredStart, next.PreferredEnd))
	if next.Doctor != nil {
		fmt.Fprintf(&b, "  Doctor: Dr. %s (%s)\n", next.Doctor.Name, orDefault(next.Doctor.Profile.Specialization, "General"))
	} else {
		b.WriteString("  Doctor: to be assigned\n")
	}
	fmt.Fprintf(&b, "  Status: %s\n", next.Status)
	if len(upcoming) > 1 {
		fmt.Fprintf(&b, "\nYou have %d more upcoming appointments.\n", len(upcoming)-1)
	}
	b.WriteString("\nYou can reschedule, cancel, or view your full schedule from the appointments screen.")
	return Response{
		Text:         b.String(),
		QuickActions: []string{"Reschedule This", "Cancel Appointment", "View All Appointments"},
	}
}

func emergencyReply() Response {
	return Response{
		Text: "EMERGENCY PROTOCOL\n\n" +
			"If this is life-threatening (chest pain or pressure, difficulty breathing, severe " +
			"bleeding, loss of consciousness, stroke symptoms): call 911 immediately and go to " +
			"the nearest emergency room.\n\n" +
			"Nearest emergency rooms:\n" +
			"  City Medical Center - 5 mins away\n" +
			"  General Hospital - 8 mins away\n" +
			"  Regional Medical Center - 12 mins away\n\n" +
			"If it's urgent but not life-threatening, I can arrange a same-day appointment, an " +
			"on-call specialist, or a telemedicine consultation. What is your emergency situation?",
		QuickActions: []string{"Call 911 Now", "Find Nearest ER", "Urgent Appointment", "Telemedicine Call"},
	}
}

func symptomReply(m string) Response {
	specialty := "General Medicine"
	detected := ""
	for _, entry := range symptomSpecialties {
		if strings.Contains(m, entry.Symptom) {
			specialty = entry.Specialty
			detected = entry.Symptom
			break
		}
	}

	var b strings.Builder
	if detected != "" {
		fmt.Fprintf(&b, "I notice you mentioned %s symptoms.\n", detected)
	} else {
		b.WriteString("Please describe your symptoms in detail.\n")
	}
	fmt.Fprintf(&b, "Recommended specialist: %s\n\n", specialty)
	b.WriteString("Seek immediate care for chest pain or pressure, difficulty breathing, sudden " +
		"severe headache, loss of consciousness, or high fever with confusion.\n\n" +
		"I can book an urgent same-day appointment, find an available specialist, and note your " +
		"symptoms for the doctor. Before the visit, write down your symptoms, list your " +
		"medications, and note how long this has been going on.\n\n" +
		"I'm an assistant and cannot provide a medical diagnosis; always consult a qualified " +
		"healthcare provider. Please describe your symptoms so I can recommend the right specialist.")
	return Response{
		Text:         b.String(),
		QuickActions: []string{"Chest Pain", "Headache/Migraine", "Fever/Flu", "Stomach Pain", "Back Pain", "Skin Issues", "Eye Problems", "Other Symptoms"},
	}
}

func educationReply() Response {
	return Response{
		Text: "I can share general information on heart health, mental health, wellness and " +
			"prevention, medications, and routine care (checkups, screenings, vaccinations). " +
			"This is educational only and never replaces professional medical advice.\n\n" +
			"What health topic would you like to learn about?",
		QuickActions: []string{"Heart Health", "Mental Health", "Nutrition", "Exercise", "Sleep", "Medications", "Preventive Care"},
	}
}

func fallbackReply() Response {
	return Response{
		Text: "Here's what I can help you with:\n\n" +
			"  Appointments - booking, availability, rescheduling\n" +
			"  Doctors - finding the right specialist for your needs\n" +
			"  Guidance - symptom assessment and general health information\n" +
			"  Emergencies - triage guidance and urgent care booking\n\n" +
			"Ask me in your own words and I'll walk you through it. What can I help you with today?",
		QuickActions: []string{"Book Appointment", "Find Specialist", "Check Symptoms", "Emergency Help", "Medical Questions"},
	}
}

func writeSlots(b *strings.Builder, slots []string) {
	for i, slot := range slots {
		fmt.Fprintf(b, "  %d. %s\n", i+1, slot)
	}
}

func relativeDay(t *time.Time, now time.Time) string {
	if t == nil {
		return "not scheduled yet"
	}
	day := t.In(now.Location()).Format("2006-01-02")
	switch day {
	case now.Format("2006-01-02"):
		return "Today"
	case now.AddDate(0, 0, 1).Format("2006-01-02"):
		return "Tomorrow"
	default:
		return format.DateTime(*t)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func containsAny(m string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(m, k) {
			return true
		}
	}
	return false
}
