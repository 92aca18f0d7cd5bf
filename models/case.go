package models

import "time"

const CasesCollection = "cases"

// Case is one showcased project. Images hold download urls pointing into object storage.
type Case struct {
	Id        string
	Title     string
	Summary   string
	Content   string
	Images    []string
	CreatedAt time.Time
}

// CoverImage is the first image of the case, if any.
func (c Case) CoverImage() string {
	if len(c.Images) == 0 {
		return ""
	}
	return c.Images[0]
}

// DeletedCase is what is left of a case document once Firestore reports its deletion.
// Images is nil when the field was absent from the prior data.
type DeletedCase struct {
	CaseId string
	Images []string
}
