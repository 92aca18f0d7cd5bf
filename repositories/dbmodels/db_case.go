package dbmodels

import (
	"time"

	"github.com/caseshowcase/showcase-backend/models"
)

// DBCase is the Firestore shape of a case document.
type DBCase struct {
	Title     string    `firestore:"title"`
	Summary   string    `firestore:"summary,omitempty"`
	Content   string    `firestore:"content,omitempty"`
	Images    []string  `firestore:"images,omitempty"`
	CreatedAt time.Time `firestore:"createdAt,omitempty"`
}

func AdaptCase(id string, db DBCase) models.Case {
	images := db.Images
	if images == nil {
		images = []string{}
	}
	return models.Case{
		Id:        id,
		Title:     db.Title,
		Summary:   db.Summary,
		Content:   db.Content,
		Images:    images,
		CreatedAt: db.CreatedAt,
	}
}
