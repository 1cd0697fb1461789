package domain

type Project struct {
	ID          int64
	Identifier  string
	Name        string
	Responsible *string
}

type CreateProjectInput struct {
	Name        string
	Identifier  string
	Responsible *string
}

// DumpProjectIdentifier names the implicit project that collects tasks
// created without an explicit project. It is looked up or lazily created.
const (
	DumpProjectIdentifier = "dump"
	DumpProjectName       = "Dump"
)
