// Package assets stores generated email assets (AI-generated images)
// and returns public URLs for embedding in rendered HTML.
//
// The package offers a small Storage interface with local filesystem
// and S3 backends. It exists so the image resolution step can swap a
// hosted URL for an inline data URI without knowing where the bytes
// went.
//
// # Usage
//
// Select a backend via Config, typically loaded from the environment:
//
//	storage, err := assets.New(ctx, assets.Config{
//		Driver:       assets.DriverLocal,
//		LocalDir:     "./assets",
//		LocalBaseURL: "/assets/",
//	})
//	if err != nil {
//		return err
//	}
//
//	url, err := storage.Put(ctx, "images/"+uuid.NewString()+".png", data, "image/png")
//
// The inline driver returns a nil Storage: callers that receive nil
// embed asset bytes as data URIs instead of uploading them.
//
// Using S3 or an S3-compatible service:
//
//	storage, err := assets.NewS3Storage(ctx, assets.S3Config{
//		Bucket:      "campaign-assets",
//		Region:      "us-east-1",
//		AccessKeyID: "key",
//		SecretKey:   "secret",
//	})
//
// # Security Considerations
//
// Keys are validated before use:
//   - Traversal sequences are rejected with ErrInvalidKey
//   - Local writes are confined to the configured base directory
//
// # Error Handling
//
// S3 failures are classified into sentinel errors:
//
//	_, err := storage.Put(ctx, key, data, "image/png")
//	if errors.Is(err, assets.ErrAccessDenied) {
//		// credentials lack write permission
//	} else if errors.Is(err, assets.ErrBucketNotFound) {
//		// bucket does not exist
//	}
package assets
