// Package linkedin turns a captured LinkedIn profile page into a structured
// Document using ordered selector chains, value validators, and a
// heading-anchored section locator.
package linkedin

import (
	"encoding/json"
	"time"
)

// PersonalInfo is the top-card block of a profile.
type PersonalInfo struct {
	Name       string `json:"name"`
	Headline   string `json:"headline,omitempty"`
	Location   string `json:"location,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
}

// Experience is one position entry.
type Experience struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	EmploymentType string `json:"employment_type,omitempty"`
	DateRange      string `json:"date_range,omitempty"`
	Duration       string `json:"duration,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	IsCurrent      bool   `json:"is_current"`
	Description    string `json:"description,omitempty"`
}

// Range parses the entry's date text. Duration is used when DateRange is empty.
func (e Experience) Range(now time.Time) DateRange {
	src := e.DateRange
	if src == "" {
		src = e.Duration
	}
	d := ParseDateRange(src, now)
	if e.IsCurrent && !d.IsCurrent && d.EndYear == 0 {
		d.IsCurrent = true
		d.End = presentLabel
		if m := tenureMonths(d.StartYear, d.StartMonth, 0, 0, true, now); m > 0 {
			d.Months = m
		}
	}
	return d
}

// Education is one school entry.
type Education struct {
	School         string `json:"school"`
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	DateRange      string `json:"date_range,omitempty"`
	GraduationYear string `json:"graduation_year,omitempty"`
}

// Skill is one listed skill.
type Skill struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts both {"name": "Go"} and a bare "Go".
func (s *Skill) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		return nil
	}
	type plain Skill
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Skill(p)
	return nil
}

// Document is the structured form of one captured profile.
type Document struct {
	SourceURL    string       `json:"source_url"`
	RawHTML      string       `json:"raw_html,omitempty"`
	RawText      string       `json:"raw_text,omitempty"`
	PersonalInfo PersonalInfo `json:"personal_info"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	ExtractedAt  time.Time    `json:"extracted_at,omitzero"`
	Metadata     Metadata     `json:"extraction_metadata,omitzero"`
}

// Metadata is what a collector records about the capture itself.
type Metadata struct {
	SourceURL string `json:"source_url,omitempty"`
}

// Empty reports whether d carries no structured content.
func (d *Document) Empty() bool {
	return d == nil || (d.PersonalInfo == PersonalInfo{} &&
		len(d.Experience) == 0 && len(d.Education) == 0 && len(d.Skills) == 0)
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d
	c.Experience = append([]Experience(nil), d.Experience...)
	c.Education = append([]Education(nil), d.Education...)
	c.Skills = append([]Skill(nil), d.Skills...)
	return &c
}

// Combine returns a copy of primary whose empty parts are filled from secondary.
// Either argument may be nil.
func Combine(primary, secondary *Document) *Document {
	if primary == nil {
		return secondary.Clone()
	}
	out := primary.Clone()
	if IsSiteChrome(out.PersonalInfo.Name) {
		out.PersonalInfo.Name = ""
	}
	if secondary == nil {
		return out
	}
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&out.SourceURL, secondary.SourceURL)
	fill(&out.RawHTML, secondary.RawHTML)
	fill(&out.RawText, secondary.RawText)
	fill(&out.PersonalInfo.Name, secondary.PersonalInfo.Name)
	fill(&out.PersonalInfo.Headline, secondary.PersonalInfo.Headline)
	fill(&out.PersonalInfo.Location, secondary.PersonalInfo.Location)
	fill(&out.PersonalInfo.ProfileURL, secondary.PersonalInfo.ProfileURL)
	fill(&out.Metadata.SourceURL, secondary.Metadata.SourceURL)
	if len(out.Experience) == 0 {
		out.Experience = append([]Experience(nil), secondary.Experience...)
	}
	if len(out.Education) == 0 {
		out.Education = append([]Education(nil), secondary.Education...)
	}
	if len(out.Skills) == 0 {
		out.Skills = append([]Skill(nil), secondary.Skills...)
	}
	if out.ExtractedAt.IsZero() {
		out.ExtractedAt = secondary.ExtractedAt
	}
	return out
}
