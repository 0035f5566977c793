package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// unknownTag is what the enrollment API sends when no level was recorded.
const unknownTag = "UNKNOWN"

const unspecifiedLabel = "Unspecified"

// Level is an optional course level tag ("l3", "l4", ...).
// The zero value is the unspecified level.
type Level struct {
	tag string
}

// NewLevel builds a Level from a raw API tag. "UNKNOWN" and blank tags
// become the unspecified level.
func NewLevel(tag string) Level {
	tag = strings.TrimSpace(tag)
	if tag == "" || tag == unknownTag {
		return Level{}
	}
	return Level{tag: tag}
}

func (l Level) IsSpecified() bool { return l.tag != "" }

// Tag returns the raw tag, empty when unspecified.
func (l Level) Tag() string { return l.tag }

// Key is the grouping key used by aggregations. Unspecified levels keep the
// API's sentinel so buckets line up with the source data.
func (l Level) Key() string {
	if !l.IsSpecified() {
		return unknownTag
	}
	return l.tag
}

// Label is the display form: "Unspecified" or the upper-cased tag.
func (l Level) Label() string {
	if !l.IsSpecified() {
		return unspecifiedLabel
	}
	return strings.ToUpper(l.tag)
}

func (l Level) String() string { return l.Key() }

func (l Level) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Key())
}

func (l *Level) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if s == nil {
		*l = Level{}
		return nil
	}
	*l = NewLevel(*s)
	return nil
}

// LevelLabel maps a grouping key (see Level.Key) to its display label.
func LevelLabel(key string) string {
	return NewLevel(key).Label()
}

type LevelCount struct {
	Level Level `json:"level"`
	Count int   `json:"count"`
}

// CourseLevels is one course with its enrollment counts per level.
type CourseLevels struct {
	Course string       `json:"course"`
	Levels []LevelCount `json:"levels"`
}

func (c CourseLevels) Total() int {
	total := 0
	for _, l := range c.Levels {
		total += l.Count
	}
	return total
}

func (c CourseLevels) Validate() error {
	if strings.TrimSpace(c.Course) == "" {
		return fmt.Errorf("course levels: empty course name")
	}
	for _, l := range c.Levels {
		if l.Count < 0 {
			return fmt.Errorf("course levels: %q level %s: negative count %d", c.Course, l.Level.Key(), l.Count)
		}
	}
	return nil
}

type CourseCount struct {
	CourseName string `json:"courseName"`
	Count      int    `json:"count"`
}

// SourceCourses is one lead source (WALKIN, CAMPAIGN, ...) with the courses
// it produced enrollments for.
type SourceCourses struct {
	SourceName string        `json:"sourceName"`
	Courses    []CourseCount `json:"courses"`
}

func (s SourceCourses) Total() int {
	total := 0
	for _, c := range s.Courses {
		total += c.Count
	}
	return total
}

func (s SourceCourses) Validate() error {
	if strings.TrimSpace(s.SourceName) == "" {
		return fmt.Errorf("source courses: empty source name")
	}
	for _, c := range s.Courses {
		if c.Count < 0 {
			return fmt.Errorf("source courses: %q course %q: negative count %d", s.SourceName, c.CourseName, c.Count)
		}
	}
	return nil
}

// SpaceSource replaces underscores with spaces ("GOOGLE_ADS" -> "GOOGLE ADS").
func SpaceSource(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// HumanizeSource turns an upper-snake-case source into title case
// ("GOOGLE_ADS" -> "Google Ads").
func HumanizeSource(name string) string {
	return cases.Title(language.Und).String(SpaceSource(name))
}
