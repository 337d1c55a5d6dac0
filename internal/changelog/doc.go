// Package changelog reconstructs releases from a flat markdown event
// stream and renders them as HTML.
//
// # Document Dialect
//
//	## 1.2.0 - 2024-03-01        release heading: name, optional date
//	### Added                     category heading
//	Login - Support for "Google" login [regression]
//	                              task line: name, optional description
//
// # Cooperative Readers
//
// The readers share one event.Cursor. The Driver scans for release
// headings and hands the cursor to ReadRelease, which hands it to
// ReadTaskSection for each category heading. Every reader consumes the
// events it owns and stops in front of the first heading at or above its
// own level, so its caller sees that heading next.
package changelog
