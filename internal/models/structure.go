package models

// ModuleType: вид активности курса.
type ModuleType string

const (
	ModuleLabel    ModuleType = "label"
	ModuleQuiz     ModuleType = "quiz"
	ModuleScorm    ModuleType = "scorm"
	ModuleResource ModuleType = "resource"
)

// Section: раздел курса, основная вкладка.
// Для раздела 0 заполняются только CourseID и IntroModuleContextID, Parts никогда.
type Section struct {
	Section string `json:"section"`
	Number  int    `json:"-"`
	Status  Status `json:"status,omitempty"`
	Parts   []Part `json:"parts,omitempty"`

	CourseID             int  `json:"courseid,omitempty"`
	IntroModuleContextID *int `json:"intromodulecontextid,omitempty"`
}

// IsIntro: раздел 0 с вводной информацией.
func (s *Section) IsIntro() bool {
	return s.Number == 0
}

// Part: активность верхнего уровня в разделе, вкладка второго уровня.
type Part struct {
	Position int         `json:"-"`
	Name     string      `json:"name,omitempty"`
	Type     ModuleType  `json:"type,omitempty"`
	Status   Status      `json:"status,omitempty"`
	ModuleID int         `json:"moduleid,omitempty"`
	Modules  []SubModule `json:"modules,omitempty"`
}

// SubModule: активность с отступом, вложенная в Part.
type SubModule struct {
	Name     string     `json:"name"`
	Type     ModuleType `json:"type"`
	Status   Status     `json:"status"`
	ModuleID int        `json:"moduleid"`
}
