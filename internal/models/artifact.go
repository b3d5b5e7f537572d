package models

// ArtifactKind identifies one kind of artifact the generator reads or writes
type ArtifactKind int

const (
	KindModel ArtifactKind = iota
	KindContract
	KindPolicy
	KindRepository
)

// String returns the string representation of ArtifactKind
func (k ArtifactKind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindContract:
		return "contract"
	case KindPolicy:
		return "policy"
	case KindRepository:
		return "repository"
	default:
		return "unknown"
	}
}

// ModelName is the class name of one scanned model, e.g. "User"
type ModelName string

// String returns the model name
func (m ModelName) String() string {
	return string(m)
}

// FileStatus is the outcome of a single generated file
type FileStatus int

const (
	StatusCreated FileStatus = iota
	StatusOverridden
	StatusSkipped
)

// String returns the string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusOverridden:
		return "overridden"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// GeneratedFile records what happened to one artifact during a run
type GeneratedFile struct {
	Kind   ArtifactKind
	Model  ModelName
	Class  string
	Path   string
	Status FileStatus
}
