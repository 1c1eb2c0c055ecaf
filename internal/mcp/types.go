package mcp

import (
	"fmt"
	"time"

	"github.com/atelier-crm/atelier/internal/domain/board"
	"github.com/atelier-crm/atelier/internal/domain/calendar"
	"github.com/atelier-crm/atelier/internal/domain/client"
	"github.com/atelier-crm/atelier/internal/domain/dashboard"
	"github.com/atelier-crm/atelier/internal/domain/meeting"
	"github.com/atelier-crm/atelier/internal/domain/project"
)

// Dates cross the tool boundary as strings. Either a full RFC 3339
// timestamp or a bare date is accepted.
const dateOnly = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use RFC 3339 or YYYY-MM-DD", value)
	}
	return t, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type ClientCreateParams struct {
	Name    string `json:"name" jsonschema:"client display name"`
	Email   string `json:"email,omitempty" jsonschema:"contact email"`
	Phone   string `json:"phone,omitempty" jsonschema:"contact phone"`
	Address string `json:"address,omitempty" jsonschema:"postal address"`
	Notes   string `json:"notes,omitempty" jsonschema:"free-form notes"`
}

type ClientListParams struct{}

type ClientGetParams struct {
	ID int `json:"id" jsonschema:"client identifier"`
}

type ClientUpdateParams struct {
	ID          int     `json:"id" jsonschema:"client identifier"`
	Name        *string `json:"name,omitempty" jsonschema:"new display name"`
	Email       *string `json:"email,omitempty" jsonschema:"new contact email"`
	Phone       *string `json:"phone,omitempty" jsonschema:"new contact phone"`
	Address     *string `json:"address,omitempty" jsonschema:"new postal address"`
	Notes       *string `json:"notes,omitempty" jsonschema:"new notes"`
	LastContact *string `json:"last_contact,omitempty" jsonschema:"last contact date (RFC 3339 or YYYY-MM-DD)"`
}

type ClientDeleteParams struct {
	ID int `json:"id" jsonschema:"client identifier"`
}

type ClientResult struct {
	Client client.Client `json:"client"`
}

type ClientListResult struct {
	Clients []client.Client `json:"clients"`
}

type ProjectCreateParams struct {
	ClientID    int      `json:"client_id" jsonschema:"owning client identifier"`
	Name        string   `json:"name" jsonschema:"project display name"`
	Description string   `json:"description,omitempty" jsonschema:"project description"`
	Status      string   `json:"status,omitempty" jsonschema:"pipeline stage (Lead, Design, In Progress, Complete); defaults to Lead"`
	Budget      float64  `json:"budget,omitempty" jsonschema:"budget in dollars"`
	StartDate   *string  `json:"start_date,omitempty" jsonschema:"start date (RFC 3339 or YYYY-MM-DD)"`
	EndDate     *string  `json:"end_date,omitempty" jsonschema:"end date (RFC 3339 or YYYY-MM-DD)"`
	Images      []string `json:"images,omitempty" jsonschema:"image references"`
}

type ProjectListParams struct {
	ClientID *int   `json:"client_id,omitempty" jsonschema:"filter by owning client"`
	Status   string `json:"status,omitempty" jsonschema:"filter by pipeline stage"`
}

type ProjectGetParams struct {
	ID int `json:"id" jsonschema:"project identifier"`
}

type ProjectUpdateParams struct {
	ID          int       `json:"id" jsonschema:"project identifier"`
	ClientID    *int      `json:"client_id,omitempty" jsonschema:"new owning client"`
	Name        *string   `json:"name,omitempty" jsonschema:"new display name"`
	Description *string   `json:"description,omitempty" jsonschema:"new description"`
	Status      *string   `json:"status,omitempty" jsonschema:"new pipeline stage"`
	Budget      *float64  `json:"budget,omitempty" jsonschema:"new budget"`
	StartDate   *string   `json:"start_date,omitempty" jsonschema:"new start date (RFC 3339 or YYYY-MM-DD)"`
	EndDate     *string   `json:"end_date,omitempty" jsonschema:"new end date (RFC 3339 or YYYY-MM-DD)"`
	Images      *[]string `json:"images,omitempty" jsonschema:"replacement image list"`
}

type ProjectMoveParams struct {
	ID     int    `json:"id" jsonschema:"project identifier"`
	Status string `json:"status" jsonschema:"target pipeline stage (Lead, Design, In Progress, Complete)"`
}

type ProjectDeleteParams struct {
	ID int `json:"id" jsonschema:"project identifier"`
}

type ProjectResult struct {
	Project project.Project `json:"project"`
}

type ProjectListResult struct {
	Projects []project.Project `json:"projects"`
}

type ProjectMoveResult struct {
	Columns      []board.Column      `json:"columns"`
	Notification *board.Notification `json:"notification,omitempty"`
}

type BoardViewParams struct{}

type BoardViewResult struct {
	Columns []board.Column `json:"columns"`
}

type MeetingCreateParams struct {
	ClientID  int    `json:"client_id" jsonschema:"client identifier"`
	ProjectID int    `json:"project_id,omitempty" jsonschema:"linked project identifier; zero for none"`
	Date      string `json:"date" jsonschema:"meeting date (RFC 3339 or YYYY-MM-DD)"`
	Notes     string `json:"notes,omitempty" jsonschema:"meeting notes"`
	FollowUp  string `json:"follow_up,omitempty" jsonschema:"follow-up action"`
}

type MeetingListParams struct {
	ClientID  *int `json:"client_id,omitempty" jsonschema:"filter by client"`
	ProjectID *int `json:"project_id,omitempty" jsonschema:"filter by linked project"`
	Upcoming  bool `json:"upcoming,omitempty" jsonschema:"only meetings from now on, soonest first"`
}

type MeetingGetParams struct {
	ID int `json:"id" jsonschema:"meeting identifier"`
}

type MeetingUpdateParams struct {
	ID        int     `json:"id" jsonschema:"meeting identifier"`
	ClientID  *int    `json:"client_id,omitempty" jsonschema:"new client identifier"`
	ProjectID *int    `json:"project_id,omitempty" jsonschema:"new linked project; zero for none"`
	Date      *string `json:"date,omitempty" jsonschema:"new meeting date (RFC 3339 or YYYY-MM-DD)"`
	Notes     *string `json:"notes,omitempty" jsonschema:"new notes"`
	FollowUp  *string `json:"follow_up,omitempty" jsonschema:"new follow-up action"`
}

type MeetingDeleteParams struct {
	ID int `json:"id" jsonschema:"meeting identifier"`
}

type MeetingResult struct {
	Meeting meeting.Meeting `json:"meeting"`
}

type MeetingListResult struct {
	Meetings []meeting.Meeting `json:"meetings"`
}

type DashboardSummaryParams struct{}

type DashboardSummaryResult struct {
	Summary dashboard.Summary `json:"summary"`
}

type CalendarMonthParams struct {
	Month string `json:"month,omitempty" jsonschema:"month to show as YYYY-MM; defaults to the current month"`
}

type CalendarMonthResult struct {
	Month calendar.Month `json:"month"`
}

type DeleteResult struct {
	Deleted bool `json:"deleted"`
	ID      int  `json:"id"`
}
