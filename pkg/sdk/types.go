package sdk

import "time"

// Role determines which screens an authenticated user may open and where
// their home screen lives.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	// RoleUser is a legacy alias emitted by older backends; it is routed
	// exactly like RolePatient.
	RoleUser Role = "user"
)

var roleHomes = map[Role]string{
	RoleAdmin:   "/admin",
	RoleDoctor:  "/doctor",
	RolePatient: "/patient",
	RoleUser:    "/patient",
}

// Home returns the role's home screen. ok is false for any role outside the
// closed set, which callers must treat as unauthenticated.
func (r Role) Home() (string, bool) {
	home, ok := roleHomes[r]
	return home, ok
}

// Known reports whether the role belongs to the closed set the client routes.
func (r Role) Known() bool {
	_, ok := roleHomes[r]
	return ok
}

// Identity is the authenticated user as known to the client. It is replaced
// wholesale on every successful auth call and never partially mutated.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// AppointmentStatus is the server-side appointment lifecycle vocabulary.
type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "pending"
	StatusConfirmed   AppointmentStatus = "confirmed"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusCompleted   AppointmentStatus = "completed"
	StatusCancelled   AppointmentStatus = "cancelled"
	StatusDeclined    AppointmentStatus = "declined"
)

// DoctorStatuses are the transitions a doctor may apply to an appointment.
// Admins may additionally mark an appointment declined.
var DoctorStatuses = []AppointmentStatus{
	StatusPending, StatusConfirmed, StatusRescheduled, StatusCompleted, StatusCancelled,
}

// AdminStatuses is the full status vocabulary shown on the admin screens.
var AdminStatuses = []AppointmentStatus{
	StatusPending, StatusConfirmed, StatusRescheduled, StatusCompleted, StatusCancelled, StatusDeclined,
}

// AvailabilitySlot is one bookable window on a doctor's calendar.
type AvailabilitySlot struct {
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	MaxPatients int       `json:"maxPatients"`
	IsClosed    bool      `json:"isClosed"`
}

// DoctorProfile carries the practice details attached to a doctor account.
type DoctorProfile struct {
	Specialization    string             `json:"specialization"`
	Experience        int                `json:"experience,omitempty"`
	Education         string             `json:"education,omitempty"`
	Description       string             `json:"description,omitempty"`
	ConsultationFee   float64            `json:"consultationFee,omitempty"`
	Location          string             `json:"location,omitempty"`
	Clinic            string             `json:"clinic,omitempty"`
	Availability      []AvailabilitySlot `json:"availability,omitempty"`
	EmergencyHolidays []string           `json:"emergencyHolidays,omitempty"`
}

// Doctor is a doctor account with its profile, as listed by the admin and
// patient screens.
type Doctor struct {
	ID       string        `json:"_id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	IsActive bool          `json:"isActive"`
	Profile  DoctorProfile `json:"profile"`
}

// EmergencyContact is the person to reach when a patient cannot be.
type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// PatientProfile is the medical profile a patient maintains.
type PatientProfile struct {
	Age              int               `json:"age,omitempty"`
	Gender           string            `json:"gender,omitempty"`
	DiseaseType      string            `json:"diseaseType,omitempty"`
	Symptoms         string            `json:"symptoms,omitempty"`
	MedicalHistory   string            `json:"medicalHistory,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

// Patient is a patient account as listed on the admin and doctor screens.
type Patient struct {
	ID        string         `json:"_id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	CreatedAt time.Time      `json:"createdAt"`
	Profile   PatientProfile `json:"profile"`
}

// Document is a file the patient attached to an appointment request.
type Document struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Appointment is a visit request with its preferred and (once assigned)
// scheduled slot.
type Appointment struct {
	ID              string            `json:"_id"`
	Status          AppointmentStatus `json:"status"`
	DiseaseCategory string            `json:"diseaseCategory"`
	Symptoms        string            `json:"symptoms,omitempty"`
	Details         string            `json:"details,omitempty"`
	PreferredDate   *time.Time        `json:"preferredDate,omitempty"`
	PreferredStart  string            `json:"preferredStart,omitempty"`
	PreferredEnd    string            `json:"preferredEnd,omitempty"`
	ScheduledDate   *time.Time        `json:"scheduledDate,omitempty"`
	ScheduledStart  string            `json:"scheduledStart,omitempty"`
	ScheduledEnd    string            `json:"scheduledEnd,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	Documents       []Document        `json:"documents,omitempty"`
	Doctor          *Doctor           `json:"doctor,omitempty"`
	Patient         *Patient          `json:"patient,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// DoctorStats summarizes a doctor's appointment load.
type DoctorStats struct {
	TotalAppointments int `json:"totalAppointments"`
	Pending           int `json:"pending"`
	Confirmed         int `json:"confirmed"`
	Completed         int `json:"completed"`
}

// DoctorDashboard is the payload of GET /doctor/dashboard.
type DoctorDashboard struct {
	User                 *Identity      `json:"user,omitempty"`
	Profile              *DoctorProfile `json:"profile,omitempty"`
	Stats                DoctorStats    `json:"stats"`
	UpcomingAppointments []Appointment  `json:"upcomingAppointments"`
}

// PatientStats summarizes a patient's appointment history.
type PatientStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

// PatientDashboard is the payload of GET /patient/dashboard.
type PatientDashboard struct {
	Upcoming []Appointment `json:"upcoming"`
	History  []Appointment `json:"history"`
	Stats    PatientStats  `json:"stats"`
}

// PatientProfileData is the payload of GET /patient/profile.
type PatientProfileData struct {
	User    *Identity       `json:"user,omitempty"`
	Profile *PatientProfile `json:"profile,omitempty"`
}
