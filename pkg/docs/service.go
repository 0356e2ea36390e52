package docs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

// ErrTimeout reports that Google Docs did not answer within the configured
// deadline.
var ErrTimeout = errors.New("document export timed out")

// Exporter creates Google Docs on behalf of a user. The http.Client must
// already carry the user's OAuth token.
type Exporter struct {
	timeout time.Duration
}

func NewExporter(timeout time.Duration) *Exporter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Exporter{timeout: timeout}
}

// Export creates a new document with the given title and content and returns
// its id and edit URL.
func (e *Exporter) Export(ctx context.Context, client *http.Client, title, content string) (docID, docURL string, err error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	svc, err := docs.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return "", "", fmt.Errorf("failed to create docs service: %w", err)
	}

	doc, err := svc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", "", wrapErr(ctx, "failed to create document", err)
	}

	if content != "" {
		_, err = svc.Documents.BatchUpdate(doc.DocumentId, &docs.BatchUpdateDocumentRequest{
			Requests: []*docs.Request{
				{
					InsertText: &docs.InsertTextRequest{
						Location: &docs.Location{Index: 1},
						Text:     content,
					},
				},
			},
		}).Context(ctx).Do()
		if err != nil {
			return "", "", wrapErr(ctx, "failed to insert content", err)
		}
	}

	return doc.DocumentId, fmt.Sprintf("https://docs.google.com/document/d/%s/edit", doc.DocumentId), nil
}

func wrapErr(ctx context.Context, msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	return fmt.Errorf("%s: %w", msg, err)
}
