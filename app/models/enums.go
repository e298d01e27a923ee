package models

// UserStatus defines the possible status values for a user.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// AcademicType defines the role an academic plays in project evaluation.
type AcademicType string

const (
	AcademicEvaluator AcademicType = "evaluator"
	AcademicEE        AcademicType = "ee"
	AcademicNone      AcademicType = "none"
)

// ActivityStatus defines the lifecycle states of an activity.
type ActivityStatus string

const (
	ActivityPending    ActivityStatus = "pending"
	ActivityInProgress ActivityStatus = "in_progress"
	ActivityCompleted  ActivityStatus = "completed"
	ActivityCancelled  ActivityStatus = "cancelled"
)

// PresentationType defines the kind of a project presentation.
type PresentationType string

const (
	PresentationPartial PresentationType = "partial"
	PresentationFinal   PresentationType = "final"
)

// ProjectStatus defines the possible status values for a project.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectInactive ProjectStatus = "inactive"
)

// OrganizationStatus defines the possible status values for a linked organization.
type OrganizationStatus string

const (
	OrganizationActive   OrganizationStatus = "active"
	OrganizationInactive OrganizationStatus = "inactive"
)

// ReportType defines the kind of a student work report.
type ReportType string

const (
	ReportMonthly ReportType = "monthly"
	ReportFinal   ReportType = "final"
)
