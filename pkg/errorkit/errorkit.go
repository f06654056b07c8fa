// Package errorkit contains the error handling conventions used across the module:
// constant error values, wrapping with an owner error, and merging of multiple errors.
package errorkit

// Finish is a helper function that can be used from a deferred context.
//
// Usage:
//
//	defer errorkit.Finish(&returnError, iter.Close)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}
