package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/cockroachdb/errors"
	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/caseshowcase/showcase-backend/models"
	"github.com/caseshowcase/showcase-backend/utils"
)

const (
	imagesField         = "images"
	documentExtension   = "document"
	protobufContentType = "application/protobuf"
)

// DeletedCaseFromEvent reads the case id and the prior images of a Firestore
// document.deleted CloudEvent. Missing images decode to a nil slice.
func DeletedCaseFromEvent(ctx context.Context, e event.Event) (models.DeletedCase, error) {
	var data firestoredata.DocumentEventData
	if err := unmarshalEventData(e, &data); err != nil {
		return models.DeletedCase{}, errors.Mark(
			errors.Wrapf(err, "event %s: could not decode data", e.ID()),
			models.ErrInvalidDeletionEvent)
	}

	oldValue := data.GetOldValue()
	if oldValue == nil {
		return models.DeletedCase{}, errors.Wrapf(models.ErrInvalidDeletionEvent,
			"event %s has no prior document value", e.ID())
	}

	caseId := caseIdFromEvent(e, oldValue.GetName())
	if caseId == "" {
		return models.DeletedCase{}, errors.Wrapf(models.ErrInvalidDeletionEvent,
			"event %s: no case id in document %q", e.ID(), oldValue.GetName())
	}

	return models.DeletedCase{
		CaseId: caseId,
		Images: imagesFromFields(ctx, caseId, oldValue.GetFields()),
	}, nil
}

func unmarshalEventData(e event.Event, data *firestoredata.DocumentEventData) error {
	contentType := e.DataContentType()
	if strings.HasPrefix(contentType, protobufContentType) {
		return proto.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(e.Data(), data)
	}
	return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(e.Data(), data)
}

// caseIdFromEvent prefers the "document" extension (cases/{caseId}) and falls back to the
// full resource name of the deleted document.
func caseIdFromEvent(e event.Event, documentName string) string {
	if document, ok := e.Extensions()[documentExtension].(string); ok && document != "" {
		return caseIdFromDocumentPath(document)
	}
	return caseIdFromDocumentPath(documentName)
}

// caseIdFromDocumentPath only accepts paths whose last two segments are cases/{caseId}.
func caseIdFromDocumentPath(path string) string {
	segments := strings.Split(path, "/")
	if len(segments) < 2 || segments[len(segments)-2] != models.CasesCollection {
		return ""
	}
	return segments[len(segments)-1]
}

func imagesFromFields(ctx context.Context, caseId string, fields map[string]*firestoredata.Value) []string {
	field, ok := fields[imagesField]
	if !ok {
		return nil
	}

	values := field.GetArrayValue().GetValues()
	images := make([]string, 0, len(values))
	for i, value := range values {
		s, ok := value.GetValueType().(*firestoredata.Value_StringValue)
		if !ok {
			utils.LoggerFromContext(ctx).WarnContext(ctx,
				fmt.Sprintf("Ignoring non string image %d of case %s", i, caseId),
				slog.String("case_id", caseId))
			continue
		}
		images = append(images, s.StringValue)
	}
	return images
}
