package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile holds the site owner's identity and contact details. The site
// stores exactly one profile; the oldest record wins if more exist.
type Profile struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Occupation        string    `json:"occupation,omitempty"`
	Title             string    `json:"title,omitempty"`
	LongTitle         string    `json:"long_title,omitempty"`
	Department        string    `json:"department,omitempty"`
	School            string    `json:"school,omitempty"`
	Institution       string    `json:"institution,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	RoomNumber        string    `json:"room_number,omitempty"`
	Building          string    `json:"building,omitempty"`
	Street            string    `json:"street,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	ZipCode           string    `json:"zip_code,omitempty"`
	Country           string    `json:"country,omitempty"`
	Website           string    `json:"website,omitempty"`
	Twitter           string    `json:"twitter,omitempty"`
	BlueSky           string    `json:"blue_sky,omitempty"`
	YouTube           string    `json:"youtube,omitempty"`
	LinkedIn          string    `json:"linkedin,omitempty"`
	GitHub            string    `json:"github,omitempty"`
	GoogleScholar     string    `json:"google_scholar,omitempty"`
	ORCID             string    `json:"orcid,omitempty"`
	UnderConstruction bool      `json:"under_construction"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Collaborator is a co-author that can be linked to references.
type Collaborator struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Website     string    `json:"website,omitempty"`
	Institution string    `json:"institution,omitempty"`
	Location    string    `json:"location,omitempty"`
	IsMe        bool      `json:"is_me"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReferenceType is the closed set of publication categories.
type ReferenceType string

const (
	RefJournalArticle        ReferenceType = "journal_article"
	RefConferenceProceedings ReferenceType = "conference_proceedings"
	RefBook                  ReferenceType = "book"
	RefBookChapter           ReferenceType = "book_chapter"
	RefPreprint              ReferenceType = "preprint"
	RefThesis                ReferenceType = "thesis"
	RefOther                 ReferenceType = "other"
)

// ReferenceTypes lists all categories in the order CV sections render them.
var ReferenceTypes = []ReferenceType{
	RefJournalArticle,
	RefConferenceProceedings,
	RefBook,
	RefBookChapter,
	RefPreprint,
	RefThesis,
	RefOther,
}

// Valid reports whether t is a known reference type.
func (t ReferenceType) Valid() bool {
	switch t {
	case RefJournalArticle, RefConferenceProceedings, RefBook,
		RefBookChapter, RefPreprint, RefThesis, RefOther:
		return true
	}
	return false
}

// Display returns the human-readable section label for the type.
func (t ReferenceType) Display() string {
	switch t {
	case RefJournalArticle:
		return "Journal Articles"
	case RefConferenceProceedings:
		return "Conference Proceedings"
	case RefBook:
		return "Books"
	case RefBookChapter:
		return "Book Chapters"
	case RefPreprint:
		return "Preprints"
	case RefThesis:
		return "Theses"
	default:
		return "Other Publications"
	}
}

// Reference is a publication record. AuthorIDs holds the display order of
// linked collaborators; it is resolved and persisted at write time and
// never re-derived on read.
type Reference struct {
	ID                uuid.UUID     `json:"id"`
	Title             string        `json:"title"`
	Authors           string        `json:"authors,omitempty"` // free-text fallback
	AuthorIDs         UUIDList      `json:"author_ids,omitempty"`
	AlphabeticalOrder bool          `json:"alphabetical_order"`
	SharedFirstAuthor bool          `json:"shared_first_author"`
	Year              int           `json:"year"`
	Type              ReferenceType `json:"reference_type"`
	Journal           string        `json:"journal,omitempty"`
	Volume            string        `json:"volume,omitempty"`
	Issue             string        `json:"issue,omitempty"`
	Pages             string        `json:"pages,omitempty"`
	DOI               string        `json:"doi,omitempty"`
	URL               string        `json:"url,omitempty"`
	PDFURL            string        `json:"pdf_url,omitempty"`
	CodeURL           string        `json:"code_url,omitempty"`
	Abstract          string        `json:"abstract,omitempty"`
	Keywords          string        `json:"keywords,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// shortTitleExclusions are articles and prepositions skipped by ShortTitle.
var shortTitleExclusions = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "and": true,
	"or": true, "on": true, "in": true, "to": true, "with": true,
	"as": true, "by": true, "for": true, "from": true, "into": true,
	"onto": true, "over": true, "under": true, "upon": true, "towards": true,
}

// ShortTitle returns the first three significant words of the title.
func (r *Reference) ShortTitle() string {
	var kept []string
	for _, word := range strings.Fields(r.Title) {
		if shortTitleExclusions[strings.ToLower(word)] {
			continue
		}
		kept = append(kept, word)
		if len(kept) == 3 {
			break
		}
	}
	return strings.Join(kept, " ")
}

// Education is a degree record, listed by descending graduation year.
type Education struct {
	ID             uuid.UUID `json:"id"`
	DegreeType     string    `json:"degree_type"`
	Field          string    `json:"field"`
	Institution    string    `json:"institution"`
	GraduationYear int       `json:"graduation_year"`
	Thesis         string    `json:"thesis,omitempty"`
	Advisor        string    `json:"advisor,omitempty"`
	Honors         string    `json:"honors,omitempty"`
	GPA            string    `json:"gpa,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Experience is an appointment or position, listed by descending start date.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Institution string    `json:"institution"`
	Department  string    `json:"department,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartDate   *Date     `json:"start_date"`
	EndDate     *Date     `json:"end_date,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TalkType is the closed set of presentation categories.
type TalkType string

const (
	TalkSeminar    TalkType = "seminar"
	TalkColloquium TalkType = "colloquium"
	TalkConference TalkType = "conference"
	TalkWorkshop   TalkType = "workshop"
	TalkPoster     TalkType = "poster"
	TalkOutreach   TalkType = "outreach"
	TalkOther      TalkType = "other"
)

// Valid reports whether t is a known talk type.
func (t TalkType) Valid() bool {
	switch t {
	case TalkSeminar, TalkColloquium, TalkConference, TalkWorkshop,
		TalkPoster, TalkOutreach, TalkOther:
		return true
	}
	return false
}

// Display returns the human-readable label for the talk type.
func (t TalkType) Display() string {
	switch t {
	case TalkSeminar:
		return "Seminar"
	case TalkColloquium:
		return "Colloquium"
	case TalkConference:
		return "Conference Talk"
	case TalkWorkshop:
		return "Workshop"
	case TalkPoster:
		return "Poster"
	case TalkOutreach:
		return "Outreach"
	default:
		return "Talk"
	}
}

// Talk is a presentation record, listed by descending date.
type Talk struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Abstract  string    `json:"abstract,omitempty"`
	Venue     string    `json:"venue"`
	Location  string    `json:"location,omitempty"`
	Type      TalkType  `json:"talk_type"`
	Invited   bool      `json:"invited"`
	Date      *Date     `json:"date"`
	SlidesURL string    `json:"slides_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GrantRole is the closed set of roles on a funded award.
type GrantRole string

const (
	GrantPI              GrantRole = "pi"
	GrantCoPI            GrantRole = "co_pi"
	GrantSeniorPersonnel GrantRole = "senior_personnel"
	GrantOtherRole       GrantRole = "other"
)

// Valid reports whether r is a known grant role.
func (r GrantRole) Valid() bool {
	switch r {
	case GrantPI, GrantCoPI, GrantSeniorPersonnel, GrantOtherRole:
		return true
	}
	return false
}

// Display returns the human-readable label for the grant role.
func (r GrantRole) Display() string {
	switch r {
	case GrantPI:
		return "PI"
	case GrantCoPI:
		return "Co-PI"
	case GrantSeniorPersonnel:
		return "Senior Personnel"
	default:
		return "Other"
	}
}

// Grant is a funded award, listed by descending start year.
type Grant struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Agency    string    `json:"agency"`
	Role      GrantRole `json:"role"`
	Amount    *int64    `json:"amount,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	StartYear int       `json:"start_year"`
	EndYear   int       `json:"end_year,omitempty"` // zero means ongoing
	CoPIs     string    `json:"co_pis,omitempty"`
	Number    string    `json:"grant_number,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Semester is the closed set of academic terms.
type Semester string

const (
	SemesterSpring Semester = "spring"
	SemesterSummer Semester = "summer"
	SemesterFall   Semester = "fall"
	SemesterWinter Semester = "winter"
)

// Valid reports whether s is a known semester.
func (s Semester) Valid() bool {
	switch s {
	case SemesterSpring, SemesterSummer, SemesterFall, SemesterWinter:
		return true
	}
	return false
}

// Ord returns the within-year sort rank of the semester, later terms first
// when sorting descending.
func (s Semester) Ord() int {
	switch s {
	case SemesterWinter:
		return 4
	case SemesterFall:
		return 3
	case SemesterSummer:
		return 2
	case SemesterSpring:
		return 1
	}
	return 0
}

// Display returns the human-readable label for the semester.
func (s Semester) Display() string {
	switch s {
	case SemesterSpring:
		return "Spring"
	case SemesterSummer:
		return "Summer"
	case SemesterFall:
		return "Fall"
	case SemesterWinter:
		return "Winter"
	}
	return ""
}

// CourseRole is the closed set of teaching roles.
type CourseRole string

const (
	CourseInstructor    CourseRole = "instructor"
	CourseCoInstructor  CourseRole = "co_instructor"
	CourseTA            CourseRole = "teaching_assistant"
	CourseGuestLecturer CourseRole = "guest_lecturer"
)

// Valid reports whether r is a known course role.
func (r CourseRole) Valid() bool {
	switch r {
	case CourseInstructor, CourseCoInstructor, CourseTA, CourseGuestLecturer:
		return true
	}
	return false
}

// Display returns the human-readable label for the course role.
func (r CourseRole) Display() string {
	switch r {
	case CourseInstructor:
		return "Instructor"
	case CourseCoInstructor:
		return "Co-Instructor"
	case CourseTA:
		return "Teaching Assistant"
	case CourseGuestLecturer:
		return "Guest Lecturer"
	}
	return ""
}

// Course is a teaching record, listed by descending year then semester.
type Course struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Title       string     `json:"title"`
	Institution string     `json:"institution"`
	Department  string     `json:"department,omitempty"`
	Semester    Semester   `json:"semester"`
	Year        int        `json:"year"`
	Role        CourseRole `json:"role"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ServiceType is the closed set of professional service venues.
type ServiceType string

const (
	ServiceJournal    ServiceType = "journal"
	ServiceConference ServiceType = "conference"
	ServiceDepartment ServiceType = "department"
	ServiceUniversity ServiceType = "university"
	ServiceCommunity  ServiceType = "community"
	ServiceOtherType  ServiceType = "other"
)

// Valid reports whether t is a known service type.
func (t ServiceType) Valid() bool {
	switch t {
	case ServiceJournal, ServiceConference, ServiceDepartment,
		ServiceUniversity, ServiceCommunity, ServiceOtherType:
		return true
	}
	return false
}

// ServiceRole is the closed set of professional service roles.
type ServiceRole string

const (
	ServiceReviewer  ServiceRole = "reviewer"
	ServiceOrganizer ServiceRole = "organizer"
	ServiceChair     ServiceRole = "chair"
	ServiceEditor    ServiceRole = "editor"
	ServiceMember    ServiceRole = "member"
	ServiceOtherRole ServiceRole = "other"
)

// Valid reports whether r is a known service role.
func (r ServiceRole) Valid() bool {
	switch r {
	case ServiceReviewer, ServiceOrganizer, ServiceChair, ServiceEditor,
		ServiceMember, ServiceOtherRole:
		return true
	}
	return false
}

// Display returns the human-readable label for the service role.
func (r ServiceRole) Display() string {
	switch r {
	case ServiceReviewer:
		return "Reviewer"
	case ServiceOrganizer:
		return "Organizer"
	case ServiceChair:
		return "Chair"
	case ServiceEditor:
		return "Editor"
	case ServiceMember:
		return "Member"
	default:
		return "Other"
	}
}

// Service is a professional service record, listed by descending year.
type Service struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Role         ServiceRole `json:"role"`
	Organization string      `json:"organization"`
	Type         ServiceType `json:"service_type"`
	Year         int         `json:"year"`
	Location     string      `json:"location,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Date is a custom type for handling SQL DATE (YYYY-MM-DD). Records hold
// it as *Date; Scanner and Valuer live on the pointer receiver.
type Date struct {
	time.Time
}

// Scan implements the Scanner interface
func (d *Date) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	t, ok := value.(time.Time)
	if !ok {
		return errors.New("failed to scan Date")
	}
	d.Time = t
	return nil
}

// Value implements the Valuer interface
func (d *Date) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return d.Time, nil
}

// MarshalJSON implements json.Marshaler
func (d *Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	str := string(data)
	if str == "null" || str == `""` {
		return nil
	}
	if len(str) > 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	var err error
	d.Time, err = time.Parse("2006-01-02", str)
	return err
}

// UUIDList stores an ordered list of collaborator ids as a JSONB array.
type UUIDList []uuid.UUID

// Scan implements the Scanner interface for UUIDList
func (l *UUIDList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("failed to scan UUIDList")
	}
	return json.Unmarshal(data, l)
}

// Value implements the Valuer interface for UUIDList
func (l UUIDList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}
