// Package fileutil holds file permission constants shared by the CLI and
// the MCP server.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for merged document output,
// which may contain private document content (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for rendered HTML reports
// intended to be served or shared.
const ReadableByAll os.FileMode = 0o644
