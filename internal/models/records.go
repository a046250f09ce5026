package models

// Записи хранилища LMS, которые читает сервис.

type Course struct {
	ID        int    `json:"id"`
	FullName  string `json:"fullname"`
	ShortName string `json:"shortname"`
	Marker    int    `json:"marker"`
}

// SectionRecord: строка course_sections.
type SectionRecord struct {
	ID       int
	Number   int
	Name     string
	Summary  string
	Sequence string
	Visible  bool
}

// ModuleRecord: строка course_modules с именем и сырым статусом по виду активности.
// Для label заполнено только LabelName; QuizState/ScormValue пусты, если попыток нет.
type ModuleRecord struct {
	ID         int
	Indent     int
	Kind       string
	LabelName  string
	QuizName   string
	QuizState  string
	ScormName  string
	ScormValue string
}
