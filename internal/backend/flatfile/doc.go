// Package flatfile implements service.Service over three line-oriented
// text files in the data directory.
//
// # File formats
//
// Task file, six lines per record, no header:
//
//	id
//	description
//	priority
//	status
//	deadline
//	category
//
// Note file, one line per record:
//
//	date: content
//
// Loading is best-effort: a missing file is an empty store, and reading
// stops silently at the first incomplete or malformed record or when the
// store's capacity is reached. Field widths apply on load as they do on
// entry, so over-long values in a hand-edited file are cut.
//
// # Known limitation
//
// Every mutation rewrites the whole file in place (O_TRUNC, no temp file or
// rename). A crash mid-write, or a second todolist process saving the same
// file, can leave it truncated or interleaved. Only one process is expected
// to use a data directory at a time.
package flatfile
