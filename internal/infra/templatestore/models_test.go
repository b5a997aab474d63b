package templatestore

import "testing"

func TestTemplateModel_ToDomain(t *testing.T) {
	model := &templateModel{
		ID:              3,
		Name:            "System Design",
		DurationMinutes: 60,
		Interviewers: []interviewerModel{
			{ID: 10, Name: "Ada"},
			{ID: 11, Name: "Lin"},
		},
	}

	got := model.toDomain()

	if got.ID != 3 || got.Name != "System Design" || got.DurationMinutes != 60 {
		t.Errorf("template fields = %+v, want id=3 name=System Design duration=60", got)
	}
	if len(got.Interviewers) != 2 {
		t.Fatalf("len(Interviewers) = %d, want 2", len(got.Interviewers))
	}

	ids := got.InterviewerIDs()
	if len(ids) != 2 || ids[0] != 10 || ids[1] != 11 {
		t.Errorf("InterviewerIDs() = %v, want [10 11]", ids)
	}
}

func TestTemplateModel_ToDomain_NoInterviewers(t *testing.T) {
	model := &templateModel{ID: 5, Name: "Intro Call", DurationMinutes: 15}

	got := model.toDomain()

	if len(got.Interviewers) != 0 {
		t.Errorf("len(Interviewers) = %d, want 0", len(got.Interviewers))
	}
	if len(got.InterviewerIDs()) != 0 {
		t.Errorf("InterviewerIDs() = %v, want empty", got.InterviewerIDs())
	}
}
