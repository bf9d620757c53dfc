// Package storage reads message assets from S3-compatible object storage.
//
// It backs two features: remote templates (see templating/remote) and
// attachments loaded by key.
//
// # Basic Usage
//
//	store, err := storage.New(storage.Config{
//		Bucket:    "mail-assets",
//		Region:    "eu-west-1",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//
//	invoice, err := storage.LoadAttachment(ctx, store, "invoices/2024-05.pdf", 0)
//	if err != nil {
//		return err
//	}
//	m.Attachments(invoice)
//
// # MinIO
//
// Set Endpoint and PathStyle for MinIO or other S3-compatible services:
//
//	storage.Config{
//		Bucket:    "mail-assets",
//		AccessKey: "minioadmin",
//		SecretKey: "minioadmin",
//		Endpoint:  "http://localhost:9000",
//		PathStyle: true,
//	}
//
// # Errors
//
// S3 failures are mapped to sentinel errors:
//
//	if errors.Is(err, storage.ErrNotFound) { ... }
//	if errors.Is(err, storage.ErrAccessDenied) { ... }
//	if errors.Is(err, storage.ErrObjectTooLarge) { ... }
package storage
