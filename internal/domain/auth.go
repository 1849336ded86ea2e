package domain

// SubjectType differentiates the token domains issued by the service.
type SubjectType string

const (
	SubjectTypeAdmin     SubjectType = "admin"
	SubjectTypeShareLink SubjectType = "share-link"
)
