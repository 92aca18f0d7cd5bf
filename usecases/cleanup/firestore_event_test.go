package cleanup

import (
	"context"
	"testing"

	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/cockroachdb/errors"
	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/caseshowcase/showcase-backend/models"
)

const documentName = "projects/showcase/databases/(default)/documents/cases/kitchen"

func stringValue(s string) *firestoredata.Value {
	return &firestoredata.Value{ValueType: &firestoredata.Value_StringValue{StringValue: s}}
}

func arrayValue(values ...*firestoredata.Value) *firestoredata.Value {
	return &firestoredata.Value{ValueType: &firestoredata.Value_ArrayValue{
		ArrayValue: &firestoredata.ArrayValue{Values: values},
	}}
}

func deletionEvent(t *testing.T, data *firestoredata.DocumentEventData, contentType string) event.Event {
	t.Helper()

	var payload []byte
	var err error
	if contentType == "application/json" {
		payload, err = protojson.Marshal(data)
	} else {
		payload, err = proto.Marshal(data)
	}
	require.NoError(t, err)

	e := event.New()
	e.SetID("event-1")
	e.SetType("google.cloud.firestore.document.v1.deleted")
	e.SetSource("//firestore.googleapis.com/projects/showcase/databases/(default)")
	require.NoError(t, e.SetData(contentType, payload))
	return e
}

func TestDeletedCaseFromEvent(t *testing.T) {
	ctx := context.Background()
	images := []string{
		"https://firebasestorage.googleapis.com/v0/b/b/o/cases%2Fkitchen%2Fa.jpg?alt=media",
		"https://firebasestorage.googleapis.com/v0/b/b/o/cases%2Fkitchen%2Fb.jpg?alt=media",
	}
	data := &firestoredata.DocumentEventData{
		OldValue: &firestoredata.Document{
			Name: documentName,
			Fields: map[string]*firestoredata.Value{
				"title":  stringValue("Kitchen"),
				"images": arrayValue(stringValue(images[0]), stringValue(images[1])),
			},
		},
	}

	for _, contentType := range []string{"application/protobuf", "application/json"} {
		t.Run(contentType, func(t *testing.T) {
			deleted, err := DeletedCaseFromEvent(ctx, deletionEvent(t, data, contentType))
			require.NoError(t, err)
			assert.Equal(t, models.DeletedCase{CaseId: "kitchen", Images: images}, deleted)
		})
	}
}

func TestDeletedCaseFromEvent_DocumentExtension(t *testing.T) {
	e := deletionEvent(t, &firestoredata.DocumentEventData{
		OldValue: &firestoredata.Document{Name: "something/else"},
	}, "application/protobuf")
	e.SetExtension("document", "cases/bathroom")

	deleted, err := DeletedCaseFromEvent(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, "bathroom", deleted.CaseId)
}

func TestDeletedCaseFromEvent_MissingImages(t *testing.T) {
	e := deletionEvent(t, &firestoredata.DocumentEventData{
		OldValue: &firestoredata.Document{
			Name:   documentName,
			Fields: map[string]*firestoredata.Value{"title": stringValue("Kitchen")},
		},
	}, "application/protobuf")

	deleted, err := DeletedCaseFromEvent(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, "kitchen", deleted.CaseId)
	assert.Nil(t, deleted.Images)
}

func TestDeletedCaseFromEvent_IgnoresNonStringImages(t *testing.T) {
	e := deletionEvent(t, &firestoredata.DocumentEventData{
		OldValue: &firestoredata.Document{
			Name: documentName,
			Fields: map[string]*firestoredata.Value{
				"images": arrayValue(
					&firestoredata.Value{ValueType: &firestoredata.Value_IntegerValue{IntegerValue: 3}},
					stringValue("https://host/o/a.jpg"),
				),
			},
		},
	}, "application/protobuf")

	deleted, err := DeletedCaseFromEvent(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://host/o/a.jpg"}, deleted.Images)
}

func TestDeletedCaseFromEvent_Invalid(t *testing.T) {
	t.Run("no prior value", func(t *testing.T) {
		e := deletionEvent(t, &firestoredata.DocumentEventData{}, "application/protobuf")

		_, err := DeletedCaseFromEvent(context.Background(), e)
		assert.ErrorIs(t, err, models.ErrInvalidDeletionEvent)
	})

	t.Run("garbage payload", func(t *testing.T) {
		e := event.New()
		e.SetID("event-2")
		e.SetType("google.cloud.firestore.document.v1.deleted")
		e.SetSource("test")
		require.NoError(t, e.SetData("application/json", []byte("{not json")))

		_, err := DeletedCaseFromEvent(context.Background(), e)
		assert.ErrorIs(t, err, models.ErrInvalidDeletionEvent)
		assert.Contains(t, err.Error(), "event event-2: could not decode data")
		// the decoding error stays the root cause
		assert.NotEqual(t, models.ErrInvalidDeletionEvent, errors.Cause(err))
	})

	t.Run("not a case document", func(t *testing.T) {
		e := deletionEvent(t, &firestoredata.DocumentEventData{
			OldValue: &firestoredata.Document{Name: "projects/p/databases/(default)/documents/users/u1"},
		}, "application/protobuf")

		_, err := DeletedCaseFromEvent(context.Background(), e)
		assert.ErrorIs(t, err, models.ErrInvalidDeletionEvent)
	})
}

func TestCaseIdFromDocumentPath(t *testing.T) {
	assert.Equal(t, "abc", caseIdFromDocumentPath("cases/abc"))
	assert.Equal(t, "abc", caseIdFromDocumentPath(documentName[:len(documentName)-len("kitchen")]+"abc"))
	assert.Equal(t, "", caseIdFromDocumentPath("cases/"))
	assert.Equal(t, "", caseIdFromDocumentPath("cases/abc/images/1"))
	assert.Equal(t, "", caseIdFromDocumentPath("users/abc"))
	assert.Equal(t, "", caseIdFromDocumentPath("showcases/abc"))
	assert.Equal(t, "", caseIdFromDocumentPath("projects/p/databases/(default)/documents/showcases/abc"))
	assert.Equal(t, "abc", caseIdFromDocumentPath("showcases/x/cases/abc"))
}
