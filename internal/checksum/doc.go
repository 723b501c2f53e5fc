// Package checksum provides content hashing for change detection.
//
// edmxtidy serializes a document before and after reconciliation and
// compares the digests: equal digests mean the file is already tidy and, in
// check mode, that nothing would be written.
//
// # Example Usage
//
//	calculator := checksum.New()
//	before := calculator.Calculate(original)
//	after := calculator.Calculate(transformed)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
