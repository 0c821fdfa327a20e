package domain

// EntityType identifies the kind of domain entity (used in activity logs).
type EntityType string

const (
	EntityTypeDeal                 EntityType = "DEAL"
	EntityTypeCompany              EntityType = "COMPANY"
	EntityTypeCustomer             EntityType = "CUSTOMER"
	EntityTypeProspect             EntityType = "PROSPECT"
	EntityTypeTodo                 EntityType = "TODO"
	EntityTypeUser                 EntityType = "USER"
	EntityTypeNotificationSettings EntityType = "NOTIFICATION_SETTINGS"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeDeal, EntityTypeCompany, EntityTypeCustomer, EntityTypeProspect,
		EntityTypeTodo, EntityTypeUser, EntityTypeNotificationSettings:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the activity log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// DealStage is the position of a deal in the sales pipeline.
type DealStage string

const (
	DealStageNew         DealStage = "NEW"
	DealStageContacted   DealStage = "CONTACTED"
	DealStageProposal    DealStage = "PROPOSAL"
	DealStageNegotiation DealStage = "NEGOTIATION"
	DealStageWon         DealStage = "WON"
	DealStageLost        DealStage = "LOST"
)

func (s DealStage) String() string { return string(s) }

func (s DealStage) IsValid() bool {
	switch s {
	case DealStageNew, DealStageContacted, DealStageProposal, DealStageNegotiation,
		DealStageWon, DealStageLost:
		return true
	}
	return false
}

// IsClosed reports whether the deal left the pipeline.
func (s DealStage) IsClosed() bool {
	return s == DealStageWon || s == DealStageLost
}

// Priority is shared by deals and todos.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// CompanyStatus is the lifecycle state of a company record.
type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "ACTIVE"
	CompanyStatusInactive CompanyStatus = "INACTIVE"
	CompanyStatusArchived CompanyStatus = "ARCHIVED"
)

func (s CompanyStatus) String() string { return string(s) }

func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusActive, CompanyStatusInactive, CompanyStatusArchived:
		return true
	}
	return false
}

// CustomerStatus is the lifecycle state of a customer.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusInactive CustomerStatus = "INACTIVE"
	CustomerStatusLead     CustomerStatus = "LEAD"
)

func (s CustomerStatus) String() string { return string(s) }

func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusLead:
		return true
	}
	return false
}

// ProspectStatus tracks qualification of a prospect.
type ProspectStatus string

const (
	ProspectStatusNew       ProspectStatus = "NEW"
	ProspectStatusContacted ProspectStatus = "CONTACTED"
	ProspectStatusQualified ProspectStatus = "QUALIFIED"
	ProspectStatusConverted ProspectStatus = "CONVERTED"
	ProspectStatusLost      ProspectStatus = "LOST"
)

func (s ProspectStatus) String() string { return string(s) }

func (s ProspectStatus) IsValid() bool {
	switch s {
	case ProspectStatusNew, ProspectStatusContacted, ProspectStatusQualified,
		ProspectStatusConverted, ProspectStatusLost:
		return true
	}
	return false
}

// TodoStatus is the progress state of a todo.
type TodoStatus string

const (
	TodoStatusTodo       TodoStatus = "TODO"
	TodoStatusInProgress TodoStatus = "IN_PROGRESS"
	TodoStatusDone       TodoStatus = "DONE"
	TodoStatusCanceled   TodoStatus = "CANCELED"
)

func (s TodoStatus) String() string { return string(s) }

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusTodo, TodoStatusInProgress, TodoStatusDone, TodoStatusCanceled:
		return true
	}
	return false
}

// IsOpen reports whether the todo still needs work.
func (s TodoStatus) IsOpen() bool {
	return s == TodoStatusTodo || s == TodoStatusInProgress
}
