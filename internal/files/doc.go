// Package files groups file-related sub-packages.
//
//   - filesystem: read, stat and atomically replace files, with an OS
//     implementation and an in-memory one for tests
package files
