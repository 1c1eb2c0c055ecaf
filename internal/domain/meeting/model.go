package meeting

import (
	"sort"
	"time"
)

// Meeting represents a client meeting. ProjectID zero means the meeting is
// not linked to a project.
type Meeting struct {
	ID        int       `json:"id"`
	ClientID  int       `json:"client_id"`
	ProjectID int       `json:"project_id,omitempty"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	FollowUp  string    `json:"follow_up,omitempty"`
}

// Clone returns a copy of the meeting.
func (m Meeting) Clone() Meeting {
	return m
}

// Upcoming filters meetings to those at or after from, sorted by date
// ascending. The input is not modified.
func Upcoming(meetings []Meeting, from time.Time) []Meeting {
	out := make([]Meeting, 0, len(meetings))
	for _, m := range meetings {
		if !m.Date.Before(from) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
