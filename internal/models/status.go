package models

// Status: состояние прохождения элемента курса.
type Status string

const (
	StatusUnstarted  Status = "unstarted"
	StatusInProgress Status = "inprogress"
	StatusCompleted  Status = "completed"
)

// Raw-состояния попыток теста и трекинга SCORM, которые пишет LMS.
const (
	QuizStateFinished   = "finished"
	QuizStateInProgress = "inprogress"

	ScormValueCompleted  = "completed"
	ScormValueIncomplete = "incomplete"
)

// QuizStatus переводит состояние попытки теста в Status.
// Пустая строка: попытки нет.
func QuizStatus(state string) Status {
	switch state {
	case QuizStateFinished:
		return StatusCompleted
	case QuizStateInProgress:
		return StatusInProgress
	default:
		return StatusUnstarted
	}
}

// ScormStatus переводит значение cmi.core.lesson_status в Status.
func ScormStatus(value string) Status {
	switch value {
	case ScormValueCompleted:
		return StatusCompleted
	case ScormValueIncomplete:
		return StatusInProgress
	default:
		return StatusUnstarted
	}
}

// Rollup сворачивает статусы детей в статус родителя:
// все completed → completed, все unstarted → unstarted, иначе inprogress.
// Ребёнок без статуса считается unstarted. Для пустого списка ok == false.
func Rollup(children []Status) (status Status, ok bool) {
	if len(children) == 0 {
		return "", false
	}

	completed, unstarted := 0, 0
	for _, s := range children {
		switch s {
		case StatusCompleted:
			completed++
		case StatusInProgress:
		default:
			unstarted++
		}
	}

	switch {
	case completed == len(children):
		return StatusCompleted, true
	case unstarted == len(children):
		return StatusUnstarted, true
	default:
		return StatusInProgress, true
	}
}

// ProgressClass: css-модификатор вкладки по статусу.
func (s Status) ProgressClass() string {
	switch s {
	case StatusCompleted:
		return "green"
	case StatusInProgress:
		return "yellow"
	default:
		return "red"
	}
}
