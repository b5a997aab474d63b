package freebusy

type busyIntervalPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type interviewerBusyPayload struct {
	InterviewerID int64                 `json:"interviewerId"`
	Busy          []busyIntervalPayload `json:"busy"`
}
