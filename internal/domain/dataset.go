package domain

import (
	"errors"
	"fmt"
)

// Envelope is the response wrapper every enrollment endpoint uses.
type Envelope[T any] struct {
	StatusCode int    `json:"statusCode,omitempty"`
	Message    string `json:"message,omitempty"`
	Data       []T    `json:"data"`
}

// Dataset is everything one dashboard render or export works from.
type Dataset struct {
	Levels     []CourseLevels
	Sources    []SourceCourses
	Telecaller []StaffCourse
	Counsellor []StaffCourse
}

// Validate reports every malformed record, not just the first one.
func (d Dataset) Validate() error {
	var errs []error
	for i, c := range d.Levels {
		if err := c.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("levels[%d]: %w", i, err))
		}
	}
	for i, s := range d.Sources {
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("sources[%d]: %w", i, err))
		}
	}
	for i, s := range d.Telecaller {
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("telecaller[%d]: %w", i, err))
		}
	}
	for i, s := range d.Counsellor {
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("counsellor[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
