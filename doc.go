// Package jsonfile persists Go values as JSON text files.
//
// A Store serializes a value to a file, deserializes a file into a value and
// reads or writes JSON entries of a bundle (a key-addressed blob store such as
// an embedded asset tree or an S3 bucket). Every operation has a "try" variant
// that collapses failures into a boolean and a zero value, logging the cause
// instead of returning it.
//
// # Quick Start
//
// Package-level generic helpers use the default Store:
//
//	err := jsonfile.Write("save.json", Profile{Name: "Ava", Level: 3})
//	p, err := jsonfile.Read[Profile]("save.json")
//
//	p, ok := jsonfile.TryRead[Profile]("save.json") // zero value, false on failure
//
// A configured Store:
//
//	store := jsonfile.New(
//	    jsonfile.WithCodec(codec.GoJSON{}),
//	    jsonfile.WithAtomicWrites(true),
//	    jsonfile.WithCreateDirs(true),
//	)
//	err := store.Write("slots/1/save.json", save)
//
// # Bundles
//
// Bundle keys carry no extension; ".json" (see WithBundleExtension) is appended
// to form the blob name:
//
//	//go:embed resources
//	var resources embed.FS
//
//	sub, _ := fs.Sub(resources, "resources")
//	store := jsonfile.New(jsonfile.WithBundle(blobstore.NewFSStore(sub)))
//	err := store.ReadFromBundle(ctx, "levels/intro", &level) // resources/levels/intro.json
//
// Writable bundles live in blobstore.LocalStore, blobstore.MemoryStore or the
// remote stores under blobstore/s3, blobstore/minio and blobstore/dynamodb.
//
// # File Format
//
// A file holds exactly the encoded value followed by a newline, indented with
// two spaces by default. There is no envelope and no version field. With
// WithCompression the bytes are compressed according to the file extension
// (".gz", ".zst", ".lz4"); the JSON inside is unchanged.
//
// # Errors
//
// Failures are typed and matchable with errors.Is and errors.As:
//
//	*NotFoundError   matches ErrNotFound (and fs.ErrNotExist)
//	*DecodeError     matches ErrDecode
//	*EncodeError     matches ErrEncode
//	ErrNoBundle      bundle operation without WithBundle
//
// KindOf maps any error to an ErrorKind for callers that prefer a switch.
//
// # Concurrency
//
// A Store is immutable after New and safe for concurrent use. It does not
// lock files: concurrent writers to one path race and the last completed
// write wins. Paths are passed to the filesystem verbatim.
package jsonfile
