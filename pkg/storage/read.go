package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/dmitrymomot/fluentmail/pkg/mailer"
)

// ReadAll downloads an object into memory, refusing objects larger than
// maxSize bytes. maxSize <= 0 uses DefaultMaxObjectSize.
func ReadAll(ctx context.Context, s Storage, key string, maxSize int64) (*Object, []byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxObjectSize
	}

	obj, body, err := s.Get(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	defer body.Close()

	if obj.Size > maxSize {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes", ErrObjectTooLarge, key, obj.Size)
	}

	// Size may be unknown, so read one byte past the limit to detect overflow.
	data, err := io.ReadAll(io.LimitReader(body, maxSize+1))
	if err != nil {
		return nil, nil, errors.Join(ErrReadFailed, err)
	}
	if int64(len(data)) > maxSize {
		return nil, nil, fmt.Errorf("%w: %s", ErrObjectTooLarge, key)
	}

	if obj.ContentType == "" || obj.ContentType == MIMEOctetStream {
		obj.ContentType = DetectContentType(key, data)
	}
	obj.Size = int64(len(data))

	return obj, data, nil
}

// AttachmentOption customizes an attachment built by LoadAttachment.
type AttachmentOption func(*mailer.Attachment)

// WithFilename overrides the attachment filename, which defaults to the last
// segment of the object key.
func WithFilename(name string) AttachmentOption {
	return func(a *mailer.Attachment) {
		a.Filename = name
	}
}

// WithContentID marks the attachment as inline, referenced from an HTML body
// as "cid:<id>".
func WithContentID(id string) AttachmentOption {
	return func(a *mailer.Attachment) {
		a.ContentID = id
	}
}

// LoadAttachment downloads an object and returns it as a mail attachment.
// maxSize <= 0 uses DefaultMaxObjectSize.
func LoadAttachment(ctx context.Context, s Storage, key string, maxSize int64, opts ...AttachmentOption) (mailer.Attachment, error) {
	obj, data, err := ReadAll(ctx, s, key, maxSize)
	if err != nil {
		return mailer.Attachment{}, err
	}

	a := mailer.Attachment{
		Filename:    path.Base(key),
		ContentType: obj.ContentType,
		Content:     data,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a, nil
}
