package models

const (
	CourseDisplaySingle = 0
	CourseDisplayMulti  = 1
)

// FormatOptions: опции формата курса.
type FormatOptions struct {
	NumSections   int `json:"numsections"`
	CourseDisplay int `json:"coursedisplay"`
}
