package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayType string

const (
	PayTypeHourly PayType = "hourly"
	PayTypeSalary PayType = "salary"
)

// Clearances is the fixed set selectable on the search form.
var Clearances = []string{
	"None",
	"Public Trust",
	"Secret",
	"Top Secret",
	"TS/SCI",
	"TS/SCI w/ Poly",
}

// BookmarkStatuses is the fixed set a bookmark may carry. Empty is also valid
// (a bookmark with notes but no status yet).
var BookmarkStatuses = []string{
	"interested",
	"applied",
	"interviewing",
	"offer",
	"rejected",
}

// SearchCriteria is the full search-form state sent to POST /search.
// The server only consumes keywords, companies_config and the wd_* limits;
// the remaining fields ride along so the API sees exactly what the form held.
// Nothing beyond the API base is validated before submission.
type SearchCriteria struct {
	Zip              string              `json:"zip"`
	Radius           float64             `json:"radius"`
	IncludeRemote    bool                `json:"include_remote"`
	RequireClearance bool                `json:"require_clearance"`
	Clearances       []string            `json:"clearances"`
	SalaryMin        float64             `json:"salary_min"`
	SalaryMax        float64             `json:"salary_max"`
	PayTypes         []PayType           `json:"pay_types"`
	Latitude         *float64            `json:"latitude,omitempty"`
	Longitude        *float64            `json:"longitude,omitempty"`
	Keywords         []string            `json:"keywords"`
	CompaniesConfig  map[string][]string `json:"companies_config"`
	WDLimit          int                 `json:"wd_limit"`
	WDMaxPages       int                 `json:"wd_max_pages"`
}

// DefaultKeywords is the fixed keyword list the form submits.
var DefaultKeywords = []string{
	"instructional designer",
	"learning experience designer",
	"curriculum developer",
	"training specialist",
	"learning and development",
}

// DefaultWorkdayBoards lists the per-source boards as "tenant|site|hostHint".
var DefaultWorkdayBoards = []string{
	"leidos|External|wd5",
	"saic|External|wd1",
	"caci|External|wd3",
	"boozallen|External|wd1",
	"gdit|External|wd5",
}

// DefaultCriteria returns the form's initial state.
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		Radius:        50,
		IncludeRemote: true,
		Clearances:    append([]string(nil), Clearances...),
		PayTypes:      []PayType{PayTypeHourly, PayTypeSalary},
		Keywords:      append([]string(nil), DefaultKeywords...),
		CompaniesConfig: map[string][]string{
			"workday": append([]string(nil), DefaultWorkdayBoards...),
		},
		WDLimit:    50,
		WDMaxPages: 2,
	}
}

// JobListing is a normalized posting as returned by the search endpoint.
// Listings live in memory for the session and are replaced wholesale by the
// next search.
type JobListing struct {
	Source         string   `json:"source"`
	Company        string   `json:"company"`
	Title          string   `json:"title"`
	Department     string   `json:"department"`
	Location       string   `json:"location"`
	Remote         bool     `json:"remote"`
	URL            string   `json:"url"`
	WorkType       string   `json:"work_type"`
	PayType        PayType  `json:"pay_type"`
	CompAnnualMin  *float64 `json:"comp_annual_min"`
	CompAnnualMax  *float64 `json:"comp_annual_max"`
	PostedAt       string   `json:"posted_at"`
	BookmarkStatus string   `json:"bookmark_status,omitempty"`
	BookmarkNotes  string   `json:"bookmark_notes,omitempty"`
}

// Bookmark is a user annotation on a listing, keyed by the listing URL.
type Bookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	URL       string    `gorm:"uniqueIndex;not null" json:"url"`
	Status    string    `json:"status"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
