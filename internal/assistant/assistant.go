// Package assistant is the conversational patient assistant. Unlike the
// chatbot's single-shot rules it keeps per-session state: a step counter that
// rotates reply variants and drives the multi-turn booking flow, and the last
// reply for repeat avoidance.
package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mahesh-Koilapu/hbctl/internal/format"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

// Reply is one assistant turn. Done marks the farewell branch so the caller
// can end the session.
type Reply struct {
	Text string
	Done bool
}

// Engine holds one assistant session.
type Engine struct {
	UserName     string
	Doctors      []sdk.Doctor
	Appointments []sdk.Appointment
	// Now is the clock used for greetings and schedule checks; defaults to
	// time.Now.
	Now func() time.Time

	step      int
	lastReply string
}

// symptomSpecialists pairs a symptom keyword with the specialist to suggest.
// Checked in order, first hit wins.
var symptomSpecialists = []struct {
	Symptom    string
	Specialist string
}{
	{"chest", "heart specialist or cardiologist"},
	{"heart", "cardiologist"},
	{"headache", "neurologist"},
	{"migraine", "neurologist"},
	{"fever", "general physician"},
	{"stomach", "gastroenterologist"},
	{"abdomen", "gastroenterologist"},
	{"back", "orthopedic specialist"},
	{"spine", "orthopedic specialist"},
	{"cough", "pulmonologist or general physician"},
	{"breathing", "pulmonologist"},
	{"skin", "dermatologist"},
	{"rash", "dermatologist"},
	{"eye", "ophthalmologist"},
	{"vision", "ophthalmologist"},
	{"joint", "orthopedic specialist"},
	{"bone", "orthopedic specialist"},
}

// Greeting opens the session.
func (e *Engine) Greeting() string {
	return fmt.Sprintf("Hello %s! I'm your medical assistant. I can help with appointments, "+
		"doctors, medications, symptoms, and urgent care. What can I do for you?", e.UserName)
}

// Respond runs one turn of the conversation.
func (e *Engine) Respond(input string) Reply {
	m := strings.ToLower(strings.TrimSpace(input))
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	var reply Reply
	switch {
	case has(m, "hello", "hi", "hey", "good morning", "good afternoon", "good evening"):
		reply.Text = e.greetingReply(now())
	case has(m, "appointment", "book", "schedule", "reserve"):
		reply.Text = e.bookingReply(m)
	case has(m, "doctor", "physician", "specialist"):
		reply.Text = e.doctorReply()
	case has(m, "emergency", "urgent", "911"):
		reply.Text = e.emergencyReply()
	case has(m, "medicine", "medication", "prescription", "drug"):
		reply.Text = fmt.Sprintf("I can help you with medication information, %s: prescription "+
			"refills, dosage information, side effects, and general medication questions. What "+
			"medication concern do you need help with?", e.UserName)
		e.step = 0
	case has(m, "symptom", "pain", "feeling", "sick", "hurt"):
		reply.Text = e.symptomReply(m)
	case has(m, "my appointment", "status", "upcoming", "scheduled"):
		reply.Text = e.statusReply(now())
	case has(m, "my name", "who am i", "my profile"):
		reply.Text = fmt.Sprintf("Your name is %s, and you're a valued patient at Heart Beat "+
			"Medical Center. I can help you with your profile, appointments, and healthcare "+
			"needs. Anything specific about your account I can help with?", e.UserName)
		e.step = 0
	case has(m, "help", "what can you do", "capabilities"):
		reply.Text = e.rotate(
			fmt.Sprintf("I can help you book appointments, find doctors, check appointment "+
				"status, get medication information, answer general health questions, and "+
				"provide emergency guidance, %s. What would you like to explore?", e.UserName),
			fmt.Sprintf("As your healthcare assistant, %s, I handle appointment scheduling, "+
				"doctor recommendations, medication guidance, health inquiries, and urgent "+
				"care support. What's most important for you right now?", e.UserName),
			fmt.Sprintf("%s, I'm here to make your healthcare easier: scheduling, specialist "+
				"matching, medication information, and urgent care. How can I assist you today?", e.UserName),
		)
	case has(m, "bye", "goodbye", "thank you", "thanks"):
		reply.Text = e.rotate(
			fmt.Sprintf("It was my pleasure to help you, %s. Have a wonderful day, and don't "+
				"hesitate to come back if you need anything else. Take care and stay healthy!", e.UserName),
			fmt.Sprintf("You're very welcome, %s! I hope you feel better soon. Reach out "+
				"anytime for your healthcare needs. Goodbye!", e.UserName),
			fmt.Sprintf("Thank you, %s. Wishing you good health and happiness. Have a great day!", e.UserName),
		)
		reply.Done = true
	default:
		reply.Text = e.rotate(
			fmt.Sprintf("I understand you're saying %q, %s. I can help with appointments, "+
				"doctors, medications, symptoms, or general health questions. What would you "+
				"like to know?", input, e.UserName),
			fmt.Sprintf("To better assist you, %s, tell me whether you need help with "+
				"appointments, doctor information, medication details, symptom assessment, "+
				"or health advice.", e.UserName),
			fmt.Sprintf("I'm here to support your health, %s. Booking, specialists, "+
				"medications, or health concerns, I'm ready to help. What's on your mind?", e.UserName),
		)
	}

	// Never say the exact same thing twice in a row.
	if reply.Text == e.lastReply {
		reply.Text = fmt.Sprintf("Let me approach this differently, %s. %s", e.UserName, reply.Text)
	}
	e.lastReply = reply.Text
	return reply
}

func (e *Engine) greetingReply(now time.Time) string {
	hour := now.Hour()
	var timeContext string
	switch {
	case hour >= 5 && hour < 12:
		timeContext = "Hope you have a healthy morning!"
	case hour >= 12 && hour < 17:
		timeContext = "How is your afternoon going?"
	case hour >= 17 && hour < 22:
		timeContext = "Hope you had a productive day!"
	default:
		timeContext = "Working late or taking care of your health?"
	}
	return e.rotate(
		fmt.Sprintf("%s, great to hear from you! %s What can I do for your health today?", e.UserName, timeContext),
		fmt.Sprintf("Hi %s! I'm here to help with medical questions or appointments. What's on your mind?", e.UserName),
		fmt.Sprintf("Hello %s! Ready to assist with your healthcare needs. How can I help you today?", e.UserName),
	)
}

// bookingReply walks a three-step flow: ask what kind of care, offer slots,
// then confirm.
func (e *Engine) bookingReply(m string) string {
	switch e.step {
	case 0:
		e.step = 1
		return fmt.Sprintf("I'd be happy to help you book an appointment, %s! Would you prefer "+
			"to see a general physician or a specialist for your visit?", e.UserName)
	case 1:
		e.step = 2
		switch {
		case has(m, "general", "family"):
			return "Perfect! For general medicine, we have openings today at 9 AM, 2 PM, and " +
				"6 PM. Tomorrow we have 10 AM and 3 PM. Which time works best for your schedule?"
		case has(m, "specialist", "specific"):
			return "Great choice! We have specialists in Cardiology, Neurology, Orthopedics, " +
				"and more. What type of specialist do you need to see?"
		default:
			return "Great choice! For today, we have openings at 9 AM, 2 PM, and 6 PM. " +
				"Tomorrow we have 10 AM and 3 PM. Which time works best for your schedule?"
		}
	default:
		e.step = 0
		return "Perfect! I'll note that preference. Use `hbctl patient book` to place the " +
			"booking and you'll see it confirmed on your appointments screen. Anything " +
			"specific you'd like to discuss during the visit?"
	}
}

func (e *Engine) doctorReply() string {
	e.step = 0
	if len(e.Doctors) == 0 {
		return fmt.Sprintf("I'm checking our doctor database for you, %s. We have specialists "+
			"in Cardiology, Neurology, Orthopedics, and General Medicine. What area of concern "+
			"do you have?", e.UserName)
	}
	top := e.Doctors
	if len(top) > 3 {
		top = top[:3]
	}
	var names []string
	for i, doc := range top {
		spec := doc.Profile.Specialization
		if spec == "" {
			spec = "General Medicine"
		}
		names = append(names, fmt.Sprintf("%d. Dr. %s, specializing in %s", i+1, doc.Name, spec))
	}
	return fmt.Sprintf("We have %d excellent doctors available. Our top options are: %s. What "+
		"type of medical concern are you experiencing so I can recommend the best match?",
		len(e.Doctors), strings.Join(names, ". "))
}

func (e *Engine) emergencyReply() string {
	e.step = 0
	return fmt.Sprintf("%s, if this is a life-threatening emergency, please call 911 "+
		"immediately. For urgent medical care I can help you book an urgent appointment. "+
		"What's your situation? Are you experiencing chest pain, difficulty breathing, severe "+
		"bleeding, or loss of consciousness?", e.UserName)
}

func (e *Engine) symptomReply(m string) string {
	e.step = 0
	for _, entry := range symptomSpecialists {
		if strings.Contains(m, entry.Symptom) {
			return fmt.Sprintf("I understand you're experiencing %s symptoms. I recommend "+
				"seeing a %s. While I can't provide a medical diagnosis, I can help you book "+
				"an urgent appointment. Would you like to schedule that right away?",
				entry.Symptom, entry.Specialist)
		}
	}
	return fmt.Sprintf("I'm here to help, %s. While I can't provide a medical diagnosis, I "+
		"can help you find the right specialist and book an appointment. Could you describe "+
		"your symptoms in more detail? For example, where are you feeling pain or discomfort?", e.UserName)
}

func (e *Engine) statusReply(now time.Time) string {
	e.step = 0
	if len(e.Appointments) == 0 {
		return fmt.Sprintf("I don't see any appointments in your record, %s. Would you like to "+
			"schedule your first appointment? I can help you choose a doctor and find a "+
			"convenient time.", e.UserName)
	}

	var upcoming []sdk.Appointment
	for _, apt := range e.Appointments {
		if apt.Status == sdk.StatusConfirmed || apt.Status == sdk.StatusPending {
			upcoming = append(upcoming, apt)
		}
	}
	if len(upcoming) == 0 {
		return fmt.Sprintf("I don't see any confirmed appointments in your schedule, %s. "+
			"Would you like me to help you book one?", e.UserName)
	}

	next := upcoming[0]
	when := "soon"
	if next.PreferredDate != nil {
		day := next.PreferredDate.In(now.Location()).Format("2006-01-02")
		switch day {
		case now.Format("2006-01-02"):
			when = "today"
		case now.AddDate(0, 0, 1).Format("2006-01-02"):
			when = "tomorrow"
		default:
			when = "on " + format.DateTime(*next.PreferredDate)
		}
	}
	docName := "your doctor"
	if next.Doctor != nil {
		docName = "Dr. " + next.Doctor.Name
	}
	start := next.PreferredStart
	if start == "" {
		start = "9:00 AM"
	}
	extra := ""
	if len(upcoming) > 1 {
		extra = fmt.Sprintf(" You also have %d other appointments coming up.", len(upcoming)-1)
	}
	return fmt.Sprintf("You have an appointment %s with %s at %s.%s Would you like to "+
		"reschedule or cancel from the appointments screen?", when, docName, start, extra)
}

// rotate picks a variant by the session's step counter and advances it.
func (e *Engine) rotate(variants ...string) string {
	out := variants[e.step%len(variants)]
	e.step++
	return out
}

func has(m string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(m, k) {
			return true
		}
	}
	return false
}
