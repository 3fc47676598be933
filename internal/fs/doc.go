// Package fs is the filesystem seam used by jsonfile.Store.
//
// [LocalFS] forwards to package os and is what [Default] holds. [FaultyFS]
// wraps another FileSystem and fails matching operations on demand, which
// lets tests hit partial writes, failed syncs and failed renames without
// touching permissions:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("save.json", fs.Fault{FailOnSync: true, FailAfterBytes: -1})
//
// Rule patterns match by substring, so a rule for "save.json" also covers
// the "save.json.tmp-*" files created by atomic writes.
//
// Nothing here takes a context. Local file calls cannot be interrupted
// mid-syscall; remote storage lives behind blobstore instead.
package fs
