// Package fs abstracts the file operations of the local blob store so that
// tests can inject I/O failures.
//
// Production code uses [Default], which is [LocalFS]. Tests wrap it with
// [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailAfterBytes: -1, FailOnSync: true})
//	store := blobstore.NewLocalStoreFS(dir, ffs)
package fs
