// Package s3 keeps bundle entries as objects in an Amazon S3 bucket.
//
//	store, err := s3.New(ctx, "game-assets",
//	    s3.WithPrefix("saves/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	if err != nil {
//	    return err
//	}
//	files := jsonfile.New(jsonfile.WithBundle(store))
//	err = files.WriteToBundle(ctx, "profile", profile) // saves/profile.json
//
// New loads credentials through the default AWS config chain. NewStore takes
// any Client, which is how tests substitute a mock. Uploads go through the
// SDK upload manager; blobs above the part size become multipart uploads.
// MinIO and other S3-compatible servers work with WithEndpoint and
// WithPathStyle.
package s3
