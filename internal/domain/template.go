package domain

type Interviewer struct {
	ID   int64
	Name string
}

type InterviewTemplate struct {
	ID              int64
	Name            string
	DurationMinutes int
	Interviewers    []Interviewer
}

func (t *InterviewTemplate) InterviewerIDs() []int64 {
	ids := make([]int64, 0, len(t.Interviewers))
	for _, iv := range t.Interviewers {
		ids = append(ids, iv.ID)
	}
	return ids
}
