// Package report provides the attendance reporting surface.
//
// It exposes the live headcount of the session roster and the
// delegation-list reconciliation: an uploaded workbook is flattened into a
// raw identifier list and summarized against the roster identifiers by the
// core reconciliation engine. The last computed summary is retained for
// re-display; a failed parse never replaces it.
//
// # HTTP Endpoints
//
//   - GET  /report/headcount : Live present/absent/total counts.
//   - POST /report/reconcile : Run a reconciliation (multipart "file",
//     optional "baseline" override).
//   - GET  /report/summary   : The last computed summary.
package report
