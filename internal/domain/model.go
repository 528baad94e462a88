package domain

import "time"

// Core records for a case. Everything here is plain data: the health package
// derives scores and progress from snapshots of these, and adapters persist them.

type Passport struct {
    GivenNames  string     `json:"givenNames" yaml:"givenNames"`
    Surname     string     `json:"surname" yaml:"surname"`
    Nationality string     `json:"nationality" yaml:"nationality"`
    Number      string     `json:"number" yaml:"number"`
    DateOfBirth *time.Time `json:"dateOfBirth,omitempty" yaml:"dateOfBirth,omitempty"`
    ExpiryDate  *time.Time `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
}

type Client struct {
    Name            string  `json:"name" yaml:"name" validate:"required"`
    Email           string  `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
    Phone           string  `json:"phone,omitempty" yaml:"phone,omitempty"`
    AvgResponseDays float64 `json:"avgResponseDays" yaml:"avgResponseDays" validate:"gte=0"`
}

// Stats is a cache of counts over the case's documents and issues. It is never
// trusted for scoring; see health.Aggregate.
type Stats struct {
    DocumentsTotal    int `json:"documentsTotal" yaml:"documentsTotal"`
    DocumentsUploaded int `json:"documentsUploaded" yaml:"documentsUploaded"`
    QualityIssues     int `json:"qualityIssues" yaml:"qualityIssues"`
    LogicIssues       int `json:"logicIssues" yaml:"logicIssues"`
}

type Case struct {
    ID        string     `json:"id" yaml:"id" validate:"required"`
    Reference string     `json:"reference" yaml:"reference"`
    VisaType  string     `json:"visaType" yaml:"visaType" validate:"required"`
    Advisor   string     `json:"advisor" yaml:"advisor"`
    Status    string     `json:"status" yaml:"status"`
    Passport  Passport   `json:"passport" yaml:"passport"`
    Client    Client     `json:"client" yaml:"client"`
    Deadline  *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`
    Stats     Stats      `json:"stats" yaml:"stats"`
    UpdatedAt time.Time  `json:"updatedAt" yaml:"updatedAt"`
}

type Document struct {
    ID              string            `json:"id" yaml:"id" validate:"required"`
    CaseID          string            `json:"caseId" yaml:"caseId"`
    Name            string            `json:"name" yaml:"name"`
    FileName        string            `json:"fileName" yaml:"fileName"`
    PipelineStatus  PipelineStatus    `json:"pipelineStatus" yaml:"pipelineStatus" validate:"required"`
    Size            int64             `json:"size" yaml:"size" validate:"gte=0"`
    ExtractedData   map[string]string `json:"extractedData,omitempty" yaml:"extractedData,omitempty"`
    AssignedToSlots []string          `json:"assignedToSlots" yaml:"assignedToSlots"`
    UploadedAt      time.Time         `json:"uploadedAt" yaml:"uploadedAt"`
}

// ConflictDetails describes two disagreeing values for the same field, each
// with the label of the document it was read from.
type ConflictDetails struct {
    Field   string `json:"field" yaml:"field"`
    ValueA  string `json:"valueA" yaml:"valueA"`
    SourceA string `json:"sourceA" yaml:"sourceA"`
    ValueB  string `json:"valueB" yaml:"valueB"`
    SourceB string `json:"sourceB" yaml:"sourceB"`
}

type AIRecommendation struct {
    Message  string   `json:"message" yaml:"message"`
    Priority string   `json:"priority,omitempty" yaml:"priority,omitempty"`
    Channels []string `json:"channels,omitempty" yaml:"channels,omitempty"`
}

type Issue struct {
    ID               string            `json:"id" yaml:"id" validate:"required"`
    CaseID           string            `json:"caseId" yaml:"caseId"`
    Type             IssueType         `json:"type" yaml:"type" validate:"required"`
    Severity         Severity          `json:"severity" yaml:"severity" validate:"required"`
    Status           IssueStatus       `json:"status" yaml:"status" validate:"required"`
    Title            string            `json:"title" yaml:"title"`
    Description      string            `json:"description,omitempty" yaml:"description,omitempty"`
    ConflictDetails  *ConflictDetails  `json:"conflictDetails,omitempty" yaml:"conflictDetails,omitempty"`
    TargetSlotID     string            `json:"targetSlotId,omitempty" yaml:"targetSlotId,omitempty"`
    DocumentIDs      []string          `json:"documentIds" yaml:"documentIds"`
    AIRecommendation *AIRecommendation `json:"aiRecommendation,omitempty" yaml:"aiRecommendation,omitempty"`
    CreatedAt        time.Time         `json:"createdAt" yaml:"createdAt"`
    ResolvedAt       *time.Time        `json:"resolvedAt,omitempty" yaml:"resolvedAt,omitempty"`
}

func (i Issue) IsOpen() bool { return i.Status == StatusOpen }

// EvidenceSlotTemplate is a requirement definition from the catalog. MinCount
// nil means one document is required.
type EvidenceSlotTemplate struct {
    ID              string       `json:"id" yaml:"id" validate:"required"`
    Name            string       `json:"name" yaml:"name" validate:"required"`
    Priority        SlotPriority `json:"priority" yaml:"priority" validate:"required"`
    MinCount        *int         `json:"minCount,omitempty" yaml:"minCount,omitempty" validate:"omitempty,gte=0"`
    MaxCount        *int         `json:"maxCount,omitempty" yaml:"maxCount,omitempty" validate:"omitempty,gte=0"`
    AcceptableTypes []string     `json:"acceptableTypes,omitempty" yaml:"acceptableTypes,omitempty"`
    Description     string       `json:"description,omitempty" yaml:"description,omitempty"`
}

// CaseBundle is one case with its documents and issues, the unit fixtures and
// the offline scorer work on.
type CaseBundle struct {
    Case      Case       `json:"case" yaml:"case" validate:"required"`
    Documents []Document `json:"documents" yaml:"documents" validate:"dive"`
    Issues    []Issue    `json:"issues" yaml:"issues" validate:"dive"`
}
