package models

// SelfEvaluation is a student's own assessment of their project work.
type SelfEvaluation struct {
	ID           int      `json:"id"`
	Feedback     string   `json:"feedback"`
	Calification float64  `json:"calification" validate:"gte=0,lte=10"`
	Student      *Student `json:"student,omitempty"`
}
