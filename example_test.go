package jsonfile_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/hupe1980/jsonfile"
	"github.com/hupe1980/jsonfile/blobstore"
)

type Profile struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Example demonstrates writing a value to a file and reading it back.
func Example() {
	dir, err := os.MkdirTemp("", "jsonfile-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "save.json")

	if err := jsonfile.Write(path, Profile{Name: "Ava", Level: 3}); err != nil {
		log.Fatal(err)
	}

	p, err := jsonfile.Read[Profile](path)
	if err != nil {
		log.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	fmt.Print(string(data))
	fmt.Printf("%s is level %d\n", p.Name, p.Level)
	// Output:
	// {
	//   "name": "Ava",
	//   "level": 3
	// }
	// Ava is level 3
}

// ExampleTryRead demonstrates the non-propagating read: a missing file
// yields the zero value and false.
func ExampleTryRead() {
	store := jsonfile.New(jsonfile.WithLogger(jsonfile.NoopLogger()))
	jsonfile.SetDefault(store)
	defer jsonfile.SetDefault(nil)

	p, ok := jsonfile.TryRead[Profile]("/nonexistent/path.json")
	fmt.Println(ok, p == Profile{})
	// Output: false true
}

// ExampleStore_ReadFromBundle demonstrates reading packaged defaults by key.
func ExampleStore_ReadFromBundle() {
	assets := fstest.MapFS{
		"defaults.json": {Data: []byte(`{"name":"Ava","level":3}`)},
	}
	store := jsonfile.New(
		jsonfile.WithBundle(blobstore.NewFSStore(assets)),
		jsonfile.WithLogger(jsonfile.NoopLogger()),
	)

	var p Profile
	if err := store.ReadFromBundle(context.Background(), "defaults", &p); err != nil {
		log.Fatal(err)
	}
	fmt.Println(p.Name, p.Level)

	err := store.ReadFromBundle(context.Background(), "missing", &p)
	fmt.Println(jsonfile.KindOf(err))
	// Output:
	// Ava 3
	// not_found
}

// ExampleWithAtomicWrites demonstrates crash-safe writes with compression.
func ExampleWithAtomicWrites() {
	dir, err := os.MkdirTemp("", "jsonfile-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	store := jsonfile.New(
		jsonfile.WithAtomicWrites(true),
		jsonfile.WithCreateDirs(true),
		jsonfile.WithCompression(true),
	)

	path := filepath.Join(dir, "slots", "1", "save.json.zst")
	fmt.Println(store.TryWrite(path, Profile{Name: "Ava", Level: 3}))

	var p Profile
	fmt.Println(store.TryRead(path, &p), p.Name)
	// Output:
	// true
	// true Ava
}
