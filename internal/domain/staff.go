package domain

import (
	"fmt"
	"strings"
)

// CourseType is the programme family a course belongs to.
type CourseType string

const (
	TypeBachelors CourseType = "BACHELORS"
	TypeMasters   CourseType = "MASTERS"
	TypeALevel    CourseType = "ALEVEL"
	TypeACCA      CourseType = "ACCA"
	TypeOther     CourseType = "OTHER"
)

// Normalize folds anything outside the known set (including "") into OTHER.
func (t CourseType) Normalize() CourseType {
	switch t {
	case TypeBachelors, TypeMasters, TypeALevel, TypeACCA:
		return t
	}
	return TypeOther
}

// StaffCourse is the enrollment count a staff role (telecaller, counsellor)
// achieved for one course.
type StaffCourse struct {
	CourseName string     `json:"courseName"`
	Count      int        `json:"count"`
	Type       CourseType `json:"type"`
}

func (s StaffCourse) Validate() error {
	if strings.TrimSpace(s.CourseName) == "" {
		return fmt.Errorf("staff course: empty course name")
	}
	if s.Count < 0 {
		return fmt.Errorf("staff course: %q: negative count %d", s.CourseName, s.Count)
	}
	return nil
}
