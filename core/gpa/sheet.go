package gpa

import (
	"fmt"
)

// Sheet is the ordered list of courses being filled in.
// Position is the only identity a course has: it is the edit and delete key.
type Sheet struct {
	courses []Course
}

// NewSheet returns a sheet holding exactly one blank course.
func NewSheet() Sheet {
	return Sheet{courses: []Course{{}}}
}

func (s Sheet) Len() int {
	return len(s.courses)
}

// Courses returns a copy of the courses in display order.
func (s Sheet) Courses() []Course {
	courses := make([]Course, len(s.courses))
	copy(courses, s.courses)
	return courses
}

func (s Sheet) Clone() Sheet {
	return Sheet{courses: s.Courses()}
}

// SetCount replaces every course with n blank ones. n <= 0 empties the sheet.
func (s *Sheet) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.courses = make([]Course, n)
}

// Append adds a blank course at the end.
func (s *Sheet) Append() {
	s.courses = append(s.courses, Course{})
}

// Update overwrites the units or grade of the course at index.
func (s *Sheet) Update(index int, field Field, value string) error {
	if !s.inRange(index) {
		return ErrCourseNotFound
	}
	switch field {
	case FieldUnits:
		s.courses[index].Units = value
	case FieldGrade:
		s.courses[index].Grade = value
	default:
		return fmt.Errorf("unknown course field %q", field)
	}
	return nil
}

// Remove deletes the course at index, shifting the following courses left.
func (s *Sheet) Remove(index int) error {
	if !s.inRange(index) {
		return ErrCourseNotFound
	}
	// copies of the sheet may share the old backing array
	courses := make([]Course, 0, len(s.courses)-1)
	courses = append(courses, s.courses[:index]...)
	s.courses = append(courses, s.courses[index+1:]...)
	return nil
}

// IsComplete reports whether every course has both units and grade filled in.
// An empty sheet is complete.
func (s Sheet) IsComplete() bool {
	for _, c := range s.courses {
		if !c.IsComplete() {
			return false
		}
	}
	return true
}

func (s Sheet) inRange(index int) bool {
	return index >= 0 && index < len(s.courses)
}
