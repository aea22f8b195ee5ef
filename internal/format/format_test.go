package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortenID(t *testing.T) {
	assert.Equal(t, "", ShortenID("", 8))
	assert.Equal(t, "ABC1", ShortenID("abc1", 8))
	assert.Equal(t, "64F0C2D1", ShortenID("64f0a1b2-33c4-55d6-77e8-99f0a1b2c2d1", 8))
	// Non-alphanumerics are stripped before shortening.
	assert.Equal(t, "ABCD", ShortenID("a-b-c-d", 8))
}

func TestDoctorID(t *testing.T) {
	assert.Equal(t, "", DoctorID(""))
	// One display letter per trailing hex digit.
	assert.Equal(t, "DR-AAAAAAAA", DoctorID("00000000"))
	assert.Equal(t, "DR-RRRRRRRR", DoctorID("ffffffff"))
	got := DoctorID("64f0a1b2c3d4e5f60718293a")
	assert.Len(t, got, len("DR-")+8)
	assert.Contains(t, got, "DR-")
	// Stable: the same id always renders the same code.
	assert.Equal(t, got, DoctorID("64f0a1b2c3d4e5f60718293a"))
}

func TestTimeRange(t *testing.T) {
	assert.Equal(t, "—", TimeRange("", ""))
	assert.Equal(t, "9:00 AM", TimeRange("9:00 AM", ""))
	assert.Equal(t, "until 5:00 PM", TimeRange("", "5:00 PM"))
	assert.Equal(t, "9:00 AM - 9:30 AM", TimeRange("9:00 AM", "9:30 AM"))
}

func TestDateTimePtr(t *testing.T) {
	assert.Equal(t, "—", DateTimePtr(nil))
	zero := time.Time{}
	assert.Equal(t, "—", DateTimePtr(&zero))
	ts := time.Date(2026, 8, 28, 15, 4, 0, 0, time.Local)
	assert.Equal(t, "Aug 28, 2026 3:04 PM", DateTimePtr(&ts))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "PT", Initials(""))
	assert.Equal(t, "A", Initials("alice"))
	assert.Equal(t, "AB", Initials("Alice Baker"))
	assert.Equal(t, "AB", Initials("alice baker carter"))
}
