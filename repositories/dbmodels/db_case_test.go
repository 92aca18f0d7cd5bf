package dbmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdaptCase(t *testing.T) {
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	c := AdaptCase("kitchen", DBCase{
		Title:     "Kitchen remodel",
		Images:    []string{"https://host/o/a.jpg"},
		CreatedAt: createdAt,
	})
	assert.Equal(t, "kitchen", c.Id)
	assert.Equal(t, "Kitchen remodel", c.Title)
	assert.Equal(t, "https://host/o/a.jpg", c.CoverImage())
	assert.Equal(t, createdAt, c.CreatedAt)

	empty := AdaptCase("empty", DBCase{})
	assert.NotNil(t, empty.Images)
	assert.Equal(t, "", empty.CoverImage())
}
