// Package publish materializes a plan on disk.
//
// A build is staged in a private temporary directory first: every leaf
// directory of the plan is created, then every artifact is written. Only when
// staging succeeded is the result promoted to the public output directory,
// either replacing it (clean builds) or overlaying it (merge builds). A
// failure while staging leaves the output directory untouched. A failure
// while promoting may leave it partially updated and is reported as a
// PROMOTE error.
package publish
