package domain

// IssueType separates single-document quality problems from cross-document
// compliance (logic) problems.
type IssueType string

const (
    IssueQuality IssueType = "quality"
    IssueLogic   IssueType = "logic"
)

func (t IssueType) Valid() bool { return t == IssueQuality || t == IssueLogic }

type Severity string

const (
    SeverityError   Severity = "error"
    SeverityWarning Severity = "warning"
    SeverityInfo    Severity = "info"
)

func (s Severity) Valid() bool {
    switch s {
    case SeverityError, SeverityWarning, SeverityInfo:
        return true
    }
    return false
}

// Rank orders severities for display: error first.
func (s Severity) Rank() int {
    switch s {
    case SeverityError:
        return 0
    case SeverityWarning:
        return 1
    default:
        return 2
    }
}

// IssueStatus only ever moves open -> resolved.
type IssueStatus string

const (
    StatusOpen     IssueStatus = "open"
    StatusResolved IssueStatus = "resolved"
)

func (s IssueStatus) Valid() bool { return s == StatusOpen || s == StatusResolved }

type PipelineStatus string

const (
    PipelineUploading       PipelineStatus = "uploading"
    PipelineProcessing      PipelineStatus = "processing"
    PipelineQualityCheck    PipelineStatus = "quality_check"
    PipelineComplianceCheck PipelineStatus = "compliance_check"
    PipelineReady           PipelineStatus = "ready"
    PipelineQualityIssue    PipelineStatus = "quality_issue"
    PipelineConflict        PipelineStatus = "conflict"
)

func (p PipelineStatus) Valid() bool {
    switch p {
    case PipelineUploading, PipelineProcessing, PipelineQualityCheck, PipelineComplianceCheck,
        PipelineReady, PipelineQualityIssue, PipelineConflict:
        return true
    }
    return false
}

// Blocking reports whether the document sits on a side branch that must be
// resolved before the pipeline can continue.
func (p PipelineStatus) Blocking() bool {
    return p == PipelineQualityIssue || p == PipelineConflict
}

type SlotPriority string

const (
    PriorityRequired    SlotPriority = "required"
    PriorityOptional    SlotPriority = "optional"
    PriorityConditional SlotPriority = "conditional"
)

func (p SlotPriority) Valid() bool {
    return p == PriorityRequired || p == PriorityOptional || p == PriorityConditional
}

// Responsibility names the party that must act next on a case.
type Responsibility string

const (
    ResponsibleLawyer     Responsibility = "lawyer"
    ResponsibleClient     Responsibility = "client"
    ResponsibleGovernment Responsibility = "government"
)

type Tier string

const (
    TierHealthy   Tier = "Healthy"
    TierAttention Tier = "Attention"
    TierCritical  Tier = "Critical"
)
