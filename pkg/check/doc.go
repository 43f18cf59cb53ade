// Package check holds the content policies.
//
// Each check is a pure function from the documents of every language tree to a Report.
// Nothing here touches the filesystem or the process: loading is done by
// pkg/adapters/fs and presentation by pkg/report.
package check
