// Package minio stores bundle entries in MinIO or any other S3-compatible
// server (Ceph, Garage, SeaweedFS) through minio-go.
//
// Pass an existing client; the package does not read credentials itself:
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds: credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	})
//	if err != nil {
//	    return err
//	}
//	files := jsonfile.New(jsonfile.WithBundle(minioblob.NewStore(client, "assets", "saves/")))
//
// Objects are uploaded with the content type derived from the blob name, so
// "profile.json" is served as application/json. Deleting a missing object
// succeeds.
package minio
