// Package artifact describes the files a build produces.
//
// An Artifact is addressed by a rooted, forward-slash url such as
// "/blog/2020/01/01/hello.html". Two artifacts are the same file when their
// urls are equal, whatever their payload. There are three payload kinds:
//
//   - Rendered: a template plus a context, executed only when written.
//   - Copied: a source path on disk, copied without loading it into memory
//     and skipped when the destination already holds the same bytes.
//   - Literal: text or bytes supplied directly, typically by a hook that
//     synthesizes a file from other artifacts.
//
// Artifacts never create directories; the publisher creates every parent
// before asking an artifact to write itself.
package artifact
