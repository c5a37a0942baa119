// Package site ties a project's configuration to the build pipeline.
//
// A build collects artifacts (static files of the theme, the project and
// optionally its drafts, then the engine's artifacts), runs the hooks over
// them, places them in a plan and hands the plan to the publisher. Plan
// errors keep their routing codes so callers can tell a conflicting site
// apart from a failed write.
package site
