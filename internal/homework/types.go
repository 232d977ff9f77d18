package homework

const (
	KeyHomeworks   = "homeworks"
	KeyCurrentDate = "current_date"

	FieldName   = "homework_name"
	FieldStatus = "status"
)

// Homework is a single work item exactly as the API returned it.
type Homework map[string]any

// Status is the review state of a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)
