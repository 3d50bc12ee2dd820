// Package publish stores rendered HTML.
//
// A target is either a local file path or an S3 URL of the form
// s3://bucket/key. ParseTarget validates it and Open returns the matching
// Store:
//
//	target, err := publish.ParseTarget("s3://site/index.html")
//	store, key, err := publish.Open(target, publish.Options{Region: "us-east-1"})
//	location, err := store.Put(ctx, key, html)
package publish
